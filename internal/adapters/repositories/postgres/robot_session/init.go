package robot_session

import (
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"gorm.io/gorm"
)

type RobotSessionRepositoryImpl struct {
	db *gorm.DB
}

func NewRobotSessionRepository(db *gorm.DB) interfaces.RobotSessionRepository {
	return &RobotSessionRepositoryImpl{db: db}
}
