package models

import "time"

// EndpointInfo описывает точку подключения к контроллеру
type EndpointInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ConnectionStatus содержит текущее состояние канала управления
type ConnectionStatus struct {
	Host      string        `json:"host"`
	State     string        `json:"state"`
	Connected bool          `json:"connected"`
	Endpoint  *EndpointInfo `json:"endpoint,omitempty"`
}

// DispatchReport содержит итог отправки сценария или команды
type DispatchReport struct {
	Status    string        `json:"status"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Endpoint  *EndpointInfo `json:"endpoint,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// MotionTarget содержит углы суставов, извлеченные из сценария
type MotionTarget struct {
	Joints      []float64 `json:"joints"`
	CommandFile string    `json:"command_file,omitempty"`
}
