package config

import (
	"os"
	"strconv"
	"time"

	"github.com/iwtcode/urAdapter/simulator"
	"github.com/iwtcode/urAdapter/urscript"
	"github.com/joho/godotenv"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	ServerPort  string
	KafkaBroker string
	KafkaTopic  string
	GinMode     string
	Database    DatabaseConfig
	Logging     LoggerConfig
	Robot       RobotConfig
	Simulator   SimulatorConfig
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool
	LogsDir    string
	Level      string
	SavingDays int
}

// DatabaseConfig содержит конфигурацию для подключения к базе данных
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// RobotConfig содержит параметры канала управления роботом
type RobotConfig struct {
	PrimaryPort   int
	DashboardPort int
	FallbackPort  int
	ProbeTimeout  time.Duration
	StopDelay     time.Duration
	ScriptPath    string
}

// SimulatorConfig содержит параметры моста к симулятору
type SimulatorConfig struct {
	CommandFile string
	Executable  string
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	primary := getEnvAsInt("UR_PRIMARY_PORT", urscript.PrimaryPort)

	config := &AppConfig{
		ServerPort:  getEnv("APP_PORT", "8083"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "ur_dispatch"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Username: getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "root"),
			DBName:   getEnv("DB_NAME", "ur_db"),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
		Robot: RobotConfig{
			PrimaryPort:   primary,
			DashboardPort: getEnvAsInt("UR_DASHBOARD_PORT", urscript.DashboardPort),
			FallbackPort:  getEnvAsInt("UR_FALLBACK_PORT", primary),
			ProbeTimeout:  getEnvAsDuration("UR_PROBE_TIMEOUT", urscript.DefaultProbeTimeout),
			StopDelay:     getEnvAsDuration("UR_STOP_DELAY", urscript.DefaultStopDelay),
			ScriptPath:    getEnv("UR_SCRIPT_PATH", urscript.DefaultScriptPath),
		},
		Simulator: SimulatorConfig{
			CommandFile: getEnv("UR_SIM_COMMAND_FILE", simulator.DefaultCommandFile),
			Executable:  getEnv("UR_SIM_EXECUTABLE", ""),
		},
	}

	return config, nil
}

// Endpoints строит таблицу точек подключения для хоста.
// fallbackPort <= 0 означает резервный порт из конфигурации.
func (r RobotConfig) Endpoints(host string, fallbackPort int) urscript.EndpointTable {
	if fallbackPort <= 0 {
		fallbackPort = r.FallbackPort
	}
	table := urscript.NewEndpointTable(host, r.PrimaryPort, fallbackPort)
	if r.DashboardPort > 0 {
		table.Dashboard.Port = r.DashboardPort
	}
	return table
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}

// getEnvAsDuration принимает как "250ms"/"5s", так и целое число миллисекунд.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}
