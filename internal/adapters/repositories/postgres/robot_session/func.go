package robot_session

import (
	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"gorm.io/gorm"
)

func (r *RobotSessionRepositoryImpl) Create(session *entities.RobotSession) error {
	return r.db.Create(session).Error
}

func (r *RobotSessionRepositoryImpl) GetByHost(host string) (*entities.RobotSession, error) {
	var session entities.RobotSession
	err := r.db.Where("host = ?", host).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateStatus обновляет состояние канала сессии
func (r *RobotSessionRepositoryImpl) UpdateStatus(sessionID, status string) error {
	result := r.db.Model(&entities.RobotSession{}).Where("session_id = ?", sessionID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RobotSessionRepositoryImpl) Delete(sessionID string) error {
	result := r.db.Where("session_id = ?", sessionID).Delete(&entities.RobotSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RobotSessionRepositoryImpl) GetBySessionID(sessionID string) (*entities.RobotSession, error) {
	var session entities.RobotSession
	err := r.db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAll возвращает все сохраненные сессии
func (r *RobotSessionRepositoryImpl) GetAll() ([]entities.RobotSession, error) {
	var sessions []entities.RobotSession
	if err := r.db.Order("created_at").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
