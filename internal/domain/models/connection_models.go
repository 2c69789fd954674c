package models

import "time"

// ConnectionRequest определяет структуру для нового запроса на подключение.
type ConnectionRequest struct {
	Host         string `json:"host" binding:"required"`                          // "192.168.1.10"
	FallbackPort int    `json:"fallback_port" binding:"omitempty,gt=0,lte=65535"` // по умолчанию из конфигурации
}

// SessionRequest определяет структуру для запросов, использующих SessionID.
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// EndpointInfo описывает точку подключения, через которую установлен канал.
type EndpointInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ConnectionInfo представляет сессию робота в пуле.
type ConnectionInfo struct {
	SessionID string        `json:"session_id"`
	Host      string        `json:"host"`
	State     string        `json:"state"`
	Endpoint  *EndpointInfo `json:"endpoint,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	LastUsed  time.Time     `json:"last_used"`
	UseCount  int64         `json:"use_count"`
	IsHealthy bool          `json:"is_healthy"`
}
