package ur

import (
	"os"
	"strconv"

	"github.com/iwtcode/urAdapter/simulator"
	"github.com/iwtcode/urAdapter/urscript"
)

// Config хранит модель конфигурации клиента
type Config struct {
	Host          string
	PrimaryPort   int
	DashboardPort int
	FallbackPort  int
	TimeoutMs     int
	ScriptPath    string
	CommandFile   string
	SimulatorPath string
	LogLevel      string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	host := os.Getenv("UR_HOST")
	if host == "" {
		host = "192.168.1.10"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	scriptPath := os.Getenv("UR_SCRIPT_PATH")
	if scriptPath == "" {
		scriptPath = urscript.DefaultScriptPath
	}

	commandFile := os.Getenv("UR_SIM_COMMAND_FILE")
	if commandFile == "" {
		commandFile = simulator.DefaultCommandFile
	}

	primary := envPort("UR_PRIMARY_PORT", urscript.PrimaryPort)

	return &Config{
		Host:          host,
		PrimaryPort:   primary,
		DashboardPort: envPort("UR_DASHBOARD_PORT", urscript.DashboardPort),
		FallbackPort:  envPort("UR_FALLBACK_PORT", primary),
		TimeoutMs:     envInt("UR_TIMEOUT", 5000),
		ScriptPath:    scriptPath,
		CommandFile:   commandFile,
		SimulatorPath: os.Getenv("UR_SIM_EXECUTABLE"),
		LogLevel:      logLevel,
	}
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envPort(key string, fallback int) int {
	v := envInt(key, fallback)
	if v > 65535 {
		return fallback
	}
	return v
}

// Endpoints строит таблицу точек подключения из конфигурации.
func (c *Config) Endpoints() urscript.EndpointTable {
	table := urscript.NewEndpointTable(c.Host, c.PrimaryPort, c.FallbackPort)
	if c.DashboardPort > 0 {
		table.Dashboard.Port = c.DashboardPort
	}
	return table
}
