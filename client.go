package ur

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iwtcode/urAdapter/models"
	"github.com/iwtcode/urAdapter/simulator"
	"github.com/iwtcode/urAdapter/urscript"
	"github.com/sirupsen/logrus"
)

// ErrNoMotion - в сценарии не найдено ни movej со списком углов, ни pose_trans с позой.
var ErrNoMotion = errors.New("no valid movement command found in script")

// Client является основной точкой входа для взаимодействия с библиотекой.
// Клиент синхронный: вызовы блокируют до завершения сетевого обмена.
type Client struct {
	dispatcher *urscript.Dispatcher
	bridge     *simulator.Bridge
	config     *Config
	logger     *logrus.Logger
}

// New создает и возвращает новый экземпляр клиента.
// Подключение к роботу не выполняется до первого вызова Connect или отправки.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.Host == "" {
		return nil, errors.New("robot host is empty")
	}

	logger := NewLogger(cfg.LogLevel)

	manager := urscript.NewConnectionManager(cfg.Endpoints(), urscript.Options{
		ProbeTimeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		Logger:       logger,
	})

	bridge := simulator.NewBridge(simulator.Config{
		CommandFile: cfg.CommandFile,
		Executable:  cfg.SimulatorPath,
	}, logger)

	return &Client{
		dispatcher: urscript.NewDispatcher(manager),
		bridge:     bridge,
		config:     cfg,
		logger:     logger,
	}, nil
}

// NewLogger создает logrus-логгер с уровнем level; "off" и "none" отключают вывод.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()

	if level == "off" || level == "none" {
		logger.SetOutput(io.Discard)
	} else {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logger.SetLevel(lvl)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// Close отправляет стоп-команду, закрывает канал и останавливает запущенный симулятор.
func (c *Client) Close() {
	c.dispatcher.Manager().Disconnect()
	if err := c.bridge.Close(); err != nil {
		c.logger.WithError(err).Warn("Failed to stop simulator")
	}
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// Connect устанавливает и проверяет канал управления.
func (c *Client) Connect() (*models.ConnectionStatus, error) {
	res := c.dispatcher.Manager().Connect()
	return c.Status(), res.AsError()
}

// Disconnect закрывает канал управления. Безопасен в любом состоянии.
func (c *Client) Disconnect() {
	c.dispatcher.Manager().Disconnect()
}

// Status возвращает текущее состояние канала.
func (c *Client) Status() *models.ConnectionStatus {
	m := c.dispatcher.Manager()
	status := &models.ConnectionStatus{
		Host:      c.config.Host,
		State:     m.State().String(),
		Connected: m.Connected(),
	}
	if ep, found := m.Endpoint(); found {
		status.Endpoint = endpointInfo(&ep)
	}
	return status
}

// SendScript отправляет сценарий из файла; пустой путь означает путь из конфигурации.
func (c *Client) SendScript(path string) (*models.DispatchReport, error) {
	if path == "" {
		path = c.config.ScriptPath
	}
	return report(c.dispatcher.SendScript(path))
}

// SendImmediate отправляет одну команду. Успех не подтверждает выполнение на контроллере.
func (c *Client) SendImmediate(command string) (*models.DispatchReport, error) {
	return report(c.dispatcher.SendImmediate(command))
}

// ExtractJoints извлекает целевые углы из текста сценария.
func (c *Client) ExtractJoints(script string) (*models.MotionTarget, error) {
	target, ok := urscript.Extract(script)
	if !ok {
		return nil, fmt.Errorf("%w: %w", urscript.ErrMalformedScript, ErrNoMotion)
	}
	return &models.MotionTarget{Joints: target.Slice()}, nil
}

// Simulate извлекает углы и передает их в симулятор.
func (c *Client) Simulate(script string) (*models.MotionTarget, error) {
	target, ok := urscript.Extract(script)
	if !ok {
		return nil, fmt.Errorf("%w: %w", urscript.ErrMalformedScript, ErrNoMotion)
	}
	if err := c.bridge.Move(target); err != nil {
		return nil, err
	}
	return &models.MotionTarget{Joints: target.Slice(), CommandFile: c.bridge.CommandFile()}, nil
}

func report(res urscript.Result) (*models.DispatchReport, error) {
	r := &models.DispatchReport{
		Status:    res.Status.String(),
		Success:   res.OK(),
		Endpoint:  endpointInfo(res.Endpoint),
		Timestamp: time.Now().UTC(),
	}
	if err := res.AsError(); err != nil {
		r.Error = err.Error()
		return r, err
	}
	return r, nil
}

func endpointInfo(ep *urscript.Endpoint) *models.EndpointInfo {
	if ep == nil {
		return nil
	}
	return &models.EndpointInfo{Name: ep.Name, Address: ep.Address()}
}
