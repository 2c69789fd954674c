package interfaces

import (
	"context"

	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"github.com/iwtcode/urAdapter/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	CreateConnection(ctx context.Context, req models.ConnectionRequest) (*models.ConnectionInfo, error)
	RestoreConnection(ctx context.Context, session entities.RobotSession) (*models.ConnectionInfo, error)
	GetAllConnections() []*models.ConnectionInfo
	DeleteConnection(ctx context.Context, sessionID string) error
	CheckConnection(ctx context.Context, sessionID string) (*models.ConnectionInfo, error)
	SendScript(ctx context.Context, req models.ScriptRequest) (*models.DispatchResult, error)
	SendImmediate(ctx context.Context, req models.CommandRequest) (*models.DispatchResult, error)
	ExtractMotion(req models.MotionRequest) (*models.MotionTarget, error)
	SimulateMotion(ctx context.Context, req models.MotionRequest) (*models.MotionTarget, error)
}
