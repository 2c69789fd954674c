package usecases

import (
	"context"

	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"github.com/iwtcode/urAdapter/internal/domain/models"
	"github.com/iwtcode/urAdapter/internal/interfaces"
)

type Usecase struct {
	robotSvc interfaces.RobotService
}

func NewUsecase(robotSvc interfaces.RobotService) interfaces.Usecases {
	return &Usecase{
		robotSvc: robotSvc,
	}
}

func (u *Usecase) CreateConnection(ctx context.Context, req models.ConnectionRequest) (*models.ConnectionInfo, error) {
	return u.robotSvc.CreateConnection(ctx, req)
}

func (u *Usecase) RestoreConnection(ctx context.Context, session entities.RobotSession) (*models.ConnectionInfo, error) {
	return u.robotSvc.RestoreConnection(ctx, session)
}

func (u *Usecase) GetAllConnections() []*models.ConnectionInfo {
	return u.robotSvc.GetAllConnections()
}

func (u *Usecase) DeleteConnection(ctx context.Context, sessionID string) error {
	return u.robotSvc.DeleteConnection(ctx, sessionID)
}

func (u *Usecase) CheckConnection(ctx context.Context, sessionID string) (*models.ConnectionInfo, error) {
	return u.robotSvc.CheckConnection(ctx, sessionID)
}
