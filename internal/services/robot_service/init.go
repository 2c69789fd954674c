package robot_service

import (
	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
)

type robotService struct {
	*SessionManager
	*MotionPlanner
	publisher *EventPublisher
}

func NewRobotService(cfg *config.AppConfig, repo interfaces.RobotSessionRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.RobotService {
	publisher := NewEventPublisher(producer, logger)

	return &robotService{
		SessionManager: NewSessionManager(cfg, repo, publisher, logger),
		MotionPlanner:  NewMotionPlanner(cfg, publisher, logger),
		publisher:      publisher,
	}
}

// Close закрывает все сессии, останавливает симулятор и дожидается отправки событий.
func (s *robotService) Close() {
	s.SessionManager.Close()
	s.MotionPlanner.Close()
	s.publisher.Wait()
}
