package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"503"`
		Message string `json:"message" example:"Робот недоступен"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Disconnected successfully"`
}

// CreateConnectionResponse представляет ответ при успешном создании сессии.
type CreateConnectionResponse struct {
	Status         string          `json:"status" example:"ok"`
	ConnectionInfo *ConnectionInfo `json:"connection_info"`
}

// GetConnectionsResponse представляет ответ со списком всех сессий.
type GetConnectionsResponse struct {
	Status      string            `json:"status" example:"ok"`
	PoolSize    int               `json:"pool_size" example:"2"`
	Connections []*ConnectionInfo `json:"connections"`
}

// CheckConnectionResponse представляет ответ при проверке подключения.
type CheckConnectionResponse struct {
	Status         string          `json:"status" example:"healthy"`
	ConnectionInfo *ConnectionInfo `json:"connection_info"`
}

// DispatchResponse представляет ответ на отправку сценария или команды.
type DispatchResponse struct {
	Status string          `json:"status" example:"ok"`
	Result *DispatchResult `json:"result"`
}

// MotionResponse представляет ответ с целевыми углами.
type MotionResponse struct {
	Status string        `json:"status" example:"ok"`
	Target *MotionTarget `json:"target"`
}
