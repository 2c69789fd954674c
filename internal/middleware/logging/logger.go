package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Enabled    bool   // Включено ли логирование
	Level      string // DEBUG, INFO, WARN, ERROR
	LogsDir    string // Директория для логов
	SavingDays uint   // Сколько дней хранить логи
}

// Logger оборачивает logrus и сохраняет key-value интерфейс сервиса.
// Ротация файла и удаление старых логов выполняются lumberjack.
type Logger struct {
	config *Config
	base   *logrus.Logger
	file   *lumberjack.Logger
	prefix string
}

func NewLogger(cfg *Config, prefix string) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	base.SetLevel(parseLevel(cfg.Level))

	l := &Logger{
		config: cfg,
		base:   base,
		prefix: prefix,
	}

	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			l.file = &lumberjack.Logger{
				Filename:  filepath.Join(cfg.LogsDir, "ur_adapter.log"),
				MaxSize:   50,
				MaxAge:    int(cfg.SavingDays),
				LocalTime: true,
			}
			output = io.MultiWriter(os.Stdout, l.file)
		}
	}
	base.SetOutput(output)

	return l
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := l.prefix
	if newPrefix != "" {
		newPrefix += " "
	}
	newPrefix += "[" + prefix + "]"

	return &Logger{
		config: l.config,
		base:   l.base,
		file:   l.file,
		prefix: newPrefix,
	}
}

// Entry возвращает logrus.Entry с префиксом для передачи в пакеты, принимающие logrus.FieldLogger.
func (l *Logger) Entry() *logrus.Entry {
	return l.base.WithField("component", l.prefix)
}

func (l *Logger) log(level logrus.Level, msg string, fields ...interface{}) {
	if !l.ShouldLog(level) {
		return
	}

	entry := l.Entry()
	for i := 0; i < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		var val interface{} = "?"
		if i+1 < len(fields) {
			val = fields[i+1]
		}
		entry = entry.WithField(key, val)
	}
	entry.Log(level, msg)
}

func (l *Logger) ShouldLog(level logrus.Level) bool {
	return l.config.Enabled && l.base.IsLevelEnabled(level)
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(logrus.DebugLevel, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(logrus.InfoLevel, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(logrus.WarnLevel, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(logrus.ErrorLevel, msg, fields...) }

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
