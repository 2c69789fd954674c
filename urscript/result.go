package urscript

import (
	"errors"
	"fmt"
)

// Status - тег результата операции над каналом управления.
type Status int

const (
	StatusOK Status = iota
	StatusEndpointUnreachable
	StatusHandshakeFailed
	StatusNotConnected
	StatusSendFailed
	StatusFileNotFound
	StatusMalformedScript
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEndpointUnreachable:
		return "endpoint_unreachable"
	case StatusHandshakeFailed:
		return "handshake_failed"
	case StatusNotConnected:
		return "not_connected"
	case StatusSendFailed:
		return "send_failed"
	case StatusFileNotFound:
		return "file_not_found"
	case StatusMalformedScript:
		return "malformed_script"
	default:
		return "unknown"
	}
}

var (
	ErrEndpointUnreachable = errors.New("endpoint unreachable")
	ErrHandshakeFailed     = errors.New("handshake failed")
	ErrNotConnected        = errors.New("not connected to robot")
	ErrSendFailed          = errors.New("send failed")
	ErrFileNotFound        = errors.New("script file not found")
	ErrMalformedScript     = errors.New("malformed script")
)

// sentinel возвращает базовую ошибку для статуса.
func (s Status) sentinel() error {
	switch s {
	case StatusEndpointUnreachable:
		return ErrEndpointUnreachable
	case StatusHandshakeFailed:
		return ErrHandshakeFailed
	case StatusNotConnected:
		return ErrNotConnected
	case StatusSendFailed:
		return ErrSendFailed
	case StatusFileNotFound:
		return ErrFileNotFound
	case StatusMalformedScript:
		return ErrMalformedScript
	default:
		return nil
	}
}

// Result - итог операции: успех либо один из именованных видов ошибки.
// Endpoint заполняется, если операция была привязана к конкретной точке подключения.
type Result struct {
	Status   Status
	Endpoint *Endpoint
	Err      error
}

// OK сообщает об успехе операции.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// AsError возвращает nil для успеха, иначе ошибку, обёрнутую вокруг сентинела статуса.
func (r Result) AsError() error {
	if r.OK() {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}
	return r.Status.sentinel()
}

func (r Result) String() string {
	if r.OK() {
		return StatusOK.String()
	}
	return fmt.Sprintf("%s: %v", r.Status, r.AsError())
}

// ok собирает успешный результат с копией точки подключения.
func ok(ep *Endpoint) Result {
	if ep != nil {
		bound := *ep
		ep = &bound
	}
	return Result{Status: StatusOK, Endpoint: ep}
}

// fail собирает неуспешный результат; cause может быть nil.
func fail(status Status, cause error) Result {
	err := status.sentinel()
	if cause != nil {
		err = fmt.Errorf("%w: %w", status.sentinel(), cause)
	}
	return Result{Status: status, Err: err}
}
