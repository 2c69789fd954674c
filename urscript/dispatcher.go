package urscript

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultScriptPath - файл, в который внешний генератор сохраняет сценарий.
const DefaultScriptPath = "GeneratedURScript.urscript"

// Dispatcher отправляет сценарии по каналу ConnectionManager,
// при необходимости переподключаясь.
type Dispatcher struct {
	manager *ConnectionManager
	logger  logrus.FieldLogger
}

// NewDispatcher создает Dispatcher поверх менеджера подключения.
func NewDispatcher(manager *ConnectionManager) *Dispatcher {
	return &Dispatcher{
		manager: manager,
		logger:  manager.logger.WithField("component", "dispatcher"),
	}
}

// Manager возвращает менеджер подключения.
func (d *Dispatcher) Manager() *ConnectionManager {
	return d.manager
}

// SendScript читает сценарий из файла и целиком пишет его в канал.
// Отсутствующий файл дает StatusFileNotFound без сетевого обмена.
func (d *Dispatcher) SendScript(path string) Result {
	if path == "" {
		path = DefaultScriptPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		d.logger.WithError(err).WithField("path", path).Warn("Script file is not readable")
		return fail(StatusFileNotFound, err)
	}

	if res := d.ensureConnected(); !res.OK() {
		return res
	}

	d.logger.WithFields(logrus.Fields{"path": path, "bytes": len(data)}).Info("Sending script to robot")
	return d.write(data)
}

// SendImmediate отправляет одну команду или программу, завершая ее переводом строки.
// Успех означает только то, что байты записаны в сокет, а не то, что контроллер их выполнил.
func (d *Dispatcher) SendImmediate(command string) Result {
	if res := d.ensureConnected(); !res.OK() {
		return res
	}

	if !strings.HasSuffix(command, "\n") {
		command += "\n"
	}
	d.logger.WithField("bytes", len(command)).Info("Sending immediate command")
	return d.write([]byte(command))
}

func (d *Dispatcher) ensureConnected() Result {
	if d.manager.Connected() {
		return ok(d.manager.endpoint)
	}
	res := d.manager.Connect()
	if !res.OK() {
		return fail(StatusNotConnected, res.AsError())
	}
	return res
}

// write пишет данные; при ошибке транспорта канал безусловно закрывается.
func (d *Dispatcher) write(payload []byte) Result {
	ep := d.manager.endpoint
	if err := d.manager.write(payload); err != nil {
		d.logger.WithError(err).Error("Error sending to robot")
		d.manager.Disconnect()
		return fail(StatusSendFailed, err)
	}
	return ok(ep)
}
