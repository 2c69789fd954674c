package interfaces

import (
	"context"

	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"github.com/iwtcode/urAdapter/internal/domain/models"
)

// RobotService - это агрегирующий интерфейс для всей бизнес-логики.
type RobotService interface {
	SessionManager
	ScriptDispatcher
	MotionPlanner
	Close()
}

// SessionManager определяет контракт для управления пулом сессий роботов.
type SessionManager interface {
	CreateConnection(ctx context.Context, req models.ConnectionRequest) (*models.ConnectionInfo, error)
	RestoreConnection(ctx context.Context, session entities.RobotSession) (*models.ConnectionInfo, error)
	GetConnection(sessionID string) (*models.ConnectionInfo, bool)
	GetAllConnections() []*models.ConnectionInfo
	DeleteConnection(ctx context.Context, sessionID string) error
	CheckConnection(ctx context.Context, sessionID string) (*models.ConnectionInfo, error)
}

// ScriptDispatcher определяет контракт отправки сценариев и команд на контроллер.
type ScriptDispatcher interface {
	SendScript(ctx context.Context, req models.ScriptRequest) (*models.DispatchResult, error)
	SendImmediate(ctx context.Context, req models.CommandRequest) (*models.DispatchResult, error)
}

// MotionPlanner определяет контракт извлечения целевых углов и передачи их в симулятор.
type MotionPlanner interface {
	ExtractMotion(script string) (*models.MotionTarget, error)
	SimulateMotion(ctx context.Context, script string) (*models.MotionTarget, error)
}
