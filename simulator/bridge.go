package simulator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/iwtcode/urAdapter/urscript"
	"github.com/sirupsen/logrus"
)

// DefaultCommandFile - файл команд, который читает контроллер симулятора.
const DefaultCommandFile = "webots_commands.txt"

// ErrExecutableNotFound - исполняемый файл симулятора не найден по указанному пути.
var ErrExecutableNotFound = errors.New("simulator executable not found")

// Config содержит настройки моста к симулятору.
type Config struct {
	CommandFile string
	// Executable - путь к симулятору. Пустая строка: только запись файла команд.
	Executable string
	Args       []string
}

// Bridge передает целевые углы в симулятор через файл команд
// и запускает процесс симулятора, если он еще не запущен.
type Bridge struct {
	cfg    Config
	logger logrus.FieldLogger

	mu     sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
}

// NewBridge создает мост. logger может быть nil.
func NewBridge(cfg Config, logger logrus.FieldLogger) *Bridge {
	if cfg.CommandFile == "" {
		cfg.CommandFile = DefaultCommandFile
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Bridge{
		cfg:    cfg,
		logger: logger.WithField("component", "simulator"),
	}
}

// CommandFile возвращает путь к файлу команд.
func (b *Bridge) CommandFile() string {
	return b.cfg.CommandFile
}

// FormatTarget сериализует углы в строку через запятую.
func FormatTarget(target urscript.JointTarget) string {
	parts := make([]string, len(target))
	for i, v := range target {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Move записывает углы в файл команд и убеждается, что симулятор запущен.
func (b *Bridge) Move(target urscript.JointTarget) error {
	if b.cfg.Executable != "" {
		if _, err := os.Stat(b.cfg.Executable); err != nil {
			return fmt.Errorf("%w: %s", ErrExecutableNotFound, b.cfg.Executable)
		}
	}

	if dir := filepath.Dir(b.cfg.CommandFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create command directory %s: %w", dir, err)
		}
	}

	line := FormatTarget(target)
	if err := os.WriteFile(b.cfg.CommandFile, []byte(line), 0o644); err != nil {
		return fmt.Errorf("failed to write command file %s: %w", b.cfg.CommandFile, err)
	}
	b.logger.WithFields(logrus.Fields{"joints": line, "file": b.cfg.CommandFile}).Info("Command written to simulator")

	if b.cfg.Executable == "" {
		return nil
	}
	return b.ensureRunning()
}

// Running сообщает, жив ли процесс, запущенный этим мостом.
func (b *Bridge) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.runningLocked()
}

func (b *Bridge) runningLocked() bool {
	if b.cmd == nil {
		return false
	}
	select {
	case <-b.exited:
		return false
	default:
		return true
	}
}

func (b *Bridge) ensureRunning() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.runningLocked() {
		return nil
	}

	cmd := exec.Command(b.cfg.Executable, b.cfg.Args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start simulator: %w", err)
	}
	exited := make(chan struct{})
	go func() {
		err := cmd.Wait()
		if err != nil {
			b.logger.WithError(err).Warn("Simulator process exited")
		} else {
			b.logger.Info("Simulator process exited")
		}
		close(exited)
	}()

	b.cmd = cmd
	b.exited = exited
	b.logger.WithField("pid", cmd.Process.Pid).Info("Simulator started")
	return nil
}

// Close останавливает процесс симулятора, если его запустил этот мост.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.runningLocked() {
		return nil
	}
	if err := b.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop simulator: %w", err)
	}
	<-b.exited
	return nil
}
