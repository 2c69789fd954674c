package models

import "time"

const (
	DispatchKindScript    = "script"
	DispatchKindImmediate = "immediate"
	DispatchKindSimulate  = "simulate"
)

// ScriptRequest - отправка сценария из файла. Пустой путь означает путь из конфигурации,
// относительный путь берется от каталога этого файла; пути вне каталога отклоняются.
type ScriptRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Path      string `json:"path"`
}

// CommandRequest - отправка одной команды URScript.
type CommandRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Command   string `json:"command" binding:"required"`
}

// MotionRequest содержит текст сценария для извлечения целевых углов.
type MotionRequest struct {
	Script string `json:"script" binding:"required"`
}

// DispatchResult - итог отправки на контроллер.
type DispatchResult struct {
	SessionID string        `json:"session_id"`
	Status    string        `json:"status"`
	Endpoint  *EndpointInfo `json:"endpoint,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// MotionTarget содержит целевые углы суставов в радианах.
type MotionTarget struct {
	Joints      []float64 `json:"joints"`
	CommandFile string    `json:"command_file,omitempty"`
}

// DispatchEvent - событие для отправки в Kafka после каждой операции.
type DispatchEvent struct {
	EventID   string    `json:"event_id"`
	SessionID string    `json:"session_id,omitempty"`
	Host      string    `json:"host,omitempty"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Joints    []float64 `json:"joints,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
