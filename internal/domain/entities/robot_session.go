package entities

import "time"

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

type RobotSession struct {
	SessionID    string    `gorm:"primaryKey;not null" json:"session_id"`
	Host         string    `gorm:"not null;unique" json:"host"`
	FallbackPort int       `json:"fallback_port"` // 0 - резервный порт из конфигурации
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Status       string    `gorm:"not null" json:"status"` // connected / disconnected
}
