package usecases

import (
	"context"
	"fmt"

	"github.com/iwtcode/urAdapter/internal/domain/models"
	apperrors "github.com/iwtcode/urAdapter/pkg/errors"
)

func (u *Usecase) SendScript(ctx context.Context, req models.ScriptRequest) (*models.DispatchResult, error) {
	if _, found := u.robotSvc.GetConnection(req.SessionID); !found {
		return nil, fmt.Errorf("не удалось отправить сценарий: сессия '%s' не найдена в активном пуле: %w", req.SessionID, apperrors.ErrDataNotFound)
	}
	return u.robotSvc.SendScript(ctx, req)
}

func (u *Usecase) SendImmediate(ctx context.Context, req models.CommandRequest) (*models.DispatchResult, error) {
	if _, found := u.robotSvc.GetConnection(req.SessionID); !found {
		return nil, fmt.Errorf("не удалось отправить команду: сессия '%s' не найдена в активном пуле: %w", req.SessionID, apperrors.ErrDataNotFound)
	}
	return u.robotSvc.SendImmediate(ctx, req)
}

func (u *Usecase) ExtractMotion(req models.MotionRequest) (*models.MotionTarget, error) {
	return u.robotSvc.ExtractMotion(req.Script)
}

func (u *Usecase) SimulateMotion(ctx context.Context, req models.MotionRequest) (*models.MotionTarget, error) {
	return u.robotSvc.SimulateMotion(ctx, req.Script)
}
