package urscript

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// ConnectionState - состояние канала управления.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connected
)

func (s ConnectionState) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

const (
	DefaultProbeTimeout = 5 * time.Second
	DefaultStopDelay    = 100 * time.Millisecond
	greetingBufferSize  = 1024
)

// HandshakeProgram - минимальная программа для проверки канала после подключения.
const HandshakeProgram = `def check_connection():
    textmsg("Connection test")
end
check_connection()
`

// StopCommand отправляется перед закрытием канала, чтобы остановить движение.
const StopCommand = "stopj(2)\n"

// DialFunc открывает TCP-соединение с таймаутом. По умолчанию net.DialTimeout.
type DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// Options содержит настройки ConnectionManager. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	ProbeTimeout time.Duration
	StopDelay    time.Duration
	Dial         DialFunc
	Logger       logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.ProbeTimeout <= 0 {
		o.ProbeTimeout = DefaultProbeTimeout
	}
	if o.StopDelay < 0 {
		o.StopDelay = 0
	} else if o.StopDelay == 0 {
		o.StopDelay = DefaultStopDelay
	}
	if o.Dial == nil {
		o.Dial = net.DialTimeout
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	return o
}

// ConnectionManager владеет не более чем одним активным каналом управления к роботу.
// Внутренней блокировки нет: вызовы должен сериализовать владелец (см. Worker).
type ConnectionManager struct {
	table  EndpointTable
	opts   Options
	logger logrus.FieldLogger

	conn     net.Conn
	endpoint *Endpoint
	state    ConnectionState
}

// NewConnectionManager создает менеджер для таблицы точек подключения.
func NewConnectionManager(table EndpointTable, opts Options) *ConnectionManager {
	opts = opts.withDefaults()
	return &ConnectionManager{
		table:  table,
		opts:   opts,
		logger: opts.Logger.WithField("host", table.Primary.Host),
		state:  Disconnected,
	}
}

// Endpoints возвращает таблицу точек подключения.
func (m *ConnectionManager) Endpoints() EndpointTable {
	return m.table
}

// State возвращает текущее состояние канала.
func (m *ConnectionManager) State() ConnectionState {
	return m.state
}

// Connected - сокращение для State() == Connected.
func (m *ConnectionManager) Connected() bool {
	return m.state == Connected
}

// Endpoint возвращает точку подключения активного канала.
func (m *ConnectionManager) Endpoint() (Endpoint, bool) {
	if m.endpoint == nil {
		return Endpoint{}, false
	}
	return *m.endpoint, true
}

// Connect опрашивает точки подключения в фиксированном порядке
// {dashboard, primary, fallback если отличается} и проверяет канал тестовой программой.
// Проверка только записывает программу: ответ контроллера не читается,
// поэтому канал, принимающий запись, считается подключенным.
func (m *ConnectionManager) Connect() Result {
	if m.state == Connected {
		return ok(m.endpoint)
	}

	m.logger.Info("Attempting to connect to robot")
	m.probeDashboard()

	var (
		candidate net.Conn
		bound     Endpoint
		probeErrs []error
	)
	for _, ep := range m.table.ControlCandidates() {
		conn, err := m.probe(ep)
		if err != nil {
			probeErrs = append(probeErrs, err)
			continue
		}
		candidate, bound = conn, ep
		break
	}

	if candidate == nil {
		m.logger.Warn("No control endpoint accepted the connection")
		return fail(StatusEndpointUnreachable, errors.Join(probeErrs...))
	}

	if _, err := candidate.Write([]byte(HandshakeProgram)); err != nil {
		m.logger.WithError(err).WithField("endpoint", bound.String()).Error("Failed to send handshake program")
		_ = candidate.Close()
		return fail(StatusHandshakeFailed, err)
	}

	m.conn = candidate
	m.endpoint = &bound
	m.state = Connected
	m.logger.WithField("endpoint", bound.String()).Info("Control channel validated")
	return ok(m.endpoint)
}

// probeDashboard проверяет доступность контроллера через dashboard-порт.
// Результат на исход Connect не влияет.
func (m *ConnectionManager) probeDashboard() {
	ep := m.table.Dashboard
	conn, err := m.probe(ep)
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(m.opts.ProbeTimeout))
	buf := make([]byte, greetingBufferSize)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		m.logger.WithError(err).Debug("Dashboard greeting not received")
		return
	}
	m.logger.WithField("greeting", string(trimGreeting(buf[:n]))).Debug("Dashboard reachable")
}

func (m *ConnectionManager) probe(ep Endpoint) (net.Conn, error) {
	log := m.logger.WithField("endpoint", ep.String())
	log.Debug("Probing endpoint")

	conn, err := m.opts.Dial("tcp", ep.Address(), m.opts.ProbeTimeout)
	if err != nil {
		log.WithError(err).Warn("Endpoint unreachable")
		return nil, &ProbeError{Endpoint: ep, Err: err}
	}
	return conn, nil
}

// Disconnect безопасно закрывает канал. Вызов допустим в любом состоянии
// и никогда не возвращает ошибку: сбои только логируются.
func (m *ConnectionManager) Disconnect() {
	conn := m.conn
	m.conn = nil
	m.endpoint = nil
	m.state = Disconnected

	if conn == nil {
		return
	}

	if _, err := conn.Write([]byte(StopCommand)); err != nil {
		m.logger.WithError(err).Warn("Failed to send stop command during disconnect")
	} else {
		time.Sleep(m.opts.StopDelay)
	}
	if err := conn.Close(); err != nil {
		m.logger.WithError(err).Warn("Failed to close control channel")
	}
	m.logger.Info("Disconnected from robot")
}

// write пишет данные в активный канал.
func (m *ConnectionManager) write(payload []byte) error {
	if m.conn == nil {
		return ErrNotConnected
	}
	_, err := m.conn.Write(payload)
	return err
}

// ProbeError описывает неудачную попытку подключения к одной точке.
type ProbeError struct {
	Endpoint Endpoint
	Err      error
}

func (e *ProbeError) Error() string {
	return "probe " + e.Endpoint.String() + ": " + e.Err.Error()
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

func trimGreeting(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return b
}
