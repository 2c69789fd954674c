package robot_service

import (
	"context"
	"fmt"
	"sync"

	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/domain/models"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
	"github.com/iwtcode/urAdapter/simulator"
	"github.com/iwtcode/urAdapter/urscript"
)

const statusSimulatorError = "simulator_error"

// MotionPlanner извлекает целевые углы из сценария и передает их в симулятор.
type MotionPlanner struct {
	mu     sync.Mutex // сериализует запись файла команд
	bridge *simulator.Bridge
	events *EventPublisher
	logger *logging.Logger
}

func NewMotionPlanner(cfg *config.AppConfig, events *EventPublisher, logger *logging.Logger) *MotionPlanner {
	l := logger.WithPrefix("MOTION")
	return &MotionPlanner{
		bridge: simulator.NewBridge(simulator.Config{
			CommandFile: cfg.Simulator.CommandFile,
			Executable:  cfg.Simulator.Executable,
		}, l.Entry()),
		events: events,
		logger: l,
	}
}

func (mp *MotionPlanner) ExtractMotion(script string) (*models.MotionTarget, error) {
	target, ok := urscript.Extract(script)
	if !ok {
		return nil, fmt.Errorf("%w: no movej joint list or pose_trans pose in script", urscript.ErrMalformedScript)
	}
	return &models.MotionTarget{Joints: target.Slice()}, nil
}

func (mp *MotionPlanner) SimulateMotion(ctx context.Context, script string) (*models.MotionTarget, error) {
	target, err := mp.ExtractMotion(script)
	if err != nil {
		mp.publish(urscript.StatusMalformedScript.String(), nil, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var joints urscript.JointTarget
	copy(joints[:], target.Joints)

	mp.mu.Lock()
	err = mp.bridge.Move(joints)
	mp.mu.Unlock()
	if err != nil {
		mp.logger.Error("Failed to pass target to simulator", "error", err)
		mp.publish(statusSimulatorError, target.Joints, err)
		return nil, err
	}

	target.CommandFile = mp.bridge.CommandFile()
	mp.logger.Info("Target passed to simulator", "joints", simulator.FormatTarget(joints))
	mp.publish(urscript.StatusOK.String(), target.Joints, nil)
	return target, nil
}

func (mp *MotionPlanner) publish(status string, joints []float64, err error) {
	event := models.DispatchEvent{
		Kind:   models.DispatchKindSimulate,
		Status: status,
		Joints: joints,
	}
	if err != nil {
		event.Error = err.Error()
	}
	mp.events.Publish(event)
}

func (mp *MotionPlanner) Close() {
	if err := mp.bridge.Close(); err != nil {
		mp.logger.Warn("Failed to stop simulator", "error", err)
	}
}
