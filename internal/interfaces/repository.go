package interfaces

import (
	"github.com/iwtcode/urAdapter/internal/domain/entities"
)

// RobotSessionRepository определяет контракт для работы с сохраненными сессиями в БД
type RobotSessionRepository interface {
	Create(session *entities.RobotSession) error
	GetByHost(host string) (*entities.RobotSession, error)
	GetBySessionID(sessionID string) (*entities.RobotSession, error)
	UpdateStatus(sessionID, status string) error
	Delete(sessionID string) error
	GetAll() ([]entities.RobotSession, error)
}
