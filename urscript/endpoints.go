package urscript

import (
	"net"
	"strconv"
)

// Стандартные порты контроллера UR.
const (
	DashboardPort = 29999
	PrimaryPort   = 30002
)

// Имена точек подключения в таблице.
const (
	EndpointDashboard = "dashboard"
	EndpointPrimary   = "primary"
	EndpointFallback  = "fallback"
)

// Endpoint описывает одну точку подключения к контроллеру робота.
type Endpoint struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Address возвращает адрес в формате host:port.
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Name + "@" + e.Address()
}

// EndpointTable - статическое описание точек подключения одного хоста.
type EndpointTable struct {
	Dashboard Endpoint
	Primary   Endpoint
	Fallback  Endpoint
}

// NewEndpointTable строит таблицу со стандартным портом dashboard.
// primaryPort <= 0 означает стандартный PrimaryPort.
// fallbackPort <= 0 означает отсутствие отдельного резервного порта:
// резервный порт совпадает с итоговым основным.
func NewEndpointTable(host string, primaryPort, fallbackPort int) EndpointTable {
	if primaryPort <= 0 {
		primaryPort = PrimaryPort
	}
	if fallbackPort <= 0 {
		fallbackPort = primaryPort
	}
	return EndpointTable{
		Dashboard: Endpoint{Name: EndpointDashboard, Host: host, Port: DashboardPort},
		Primary:   Endpoint{Name: EndpointPrimary, Host: host, Port: primaryPort},
		Fallback:  Endpoint{Name: EndpointFallback, Host: host, Port: fallbackPort},
	}
}

// HasDistinctFallback сообщает, отличается ли резервный порт от основного.
func (t EndpointTable) HasDistinctFallback() bool {
	return t.Fallback.Port != t.Primary.Port
}

// ControlCandidates возвращает кандидатов для канала управления в порядке приоритета.
func (t EndpointTable) ControlCandidates() []Endpoint {
	candidates := []Endpoint{t.Primary}
	if t.HasDistinctFallback() {
		candidates = append(candidates, t.Fallback)
	}
	return candidates
}
