package robot_service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/urAdapter/internal/domain/models"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
)

const publishTimeout = 5 * time.Second

// EventPublisher отправляет DispatchEvent в Kafka в фоне.
// Ошибка брокера не влияет на результат операции с роботом.
type EventPublisher struct {
	producer interfaces.KafkaService
	logger   *logging.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewEventPublisher(producer interfaces.KafkaService, logger *logging.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		logger:   logger.WithPrefix("PUBLISHER"),
		timeout:  publishTimeout,
	}
}

func (p *EventPublisher) Publish(event models.DispatchEvent) {
	if p.producer == nil {
		return
	}
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event for Kafka", "eventID", event.EventID, "error", err)
		return
	}

	key := event.SessionID
	if key == "" {
		key = event.Kind
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		if err := p.producer.Produce(ctx, []byte(key), jsonData); err != nil {
			p.logger.Error("Failed to send event to Kafka", "eventID", event.EventID, "kind", event.Kind, "error", err)
			return
		}
		p.logger.Debug("Event sent to Kafka", "eventID", event.EventID, "kind", event.Kind, "status", event.Status)
	}()
}

// Wait блокирует до завершения всех начатых отправок.
func (p *EventPublisher) Wait() {
	p.wg.Wait()
}
