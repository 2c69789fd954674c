package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iwtcode/urAdapter/simulator"
	"github.com/iwtcode/urAdapter/urscript"
)

const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
	Conflict            = "conflict"
	RobotUnavailable    = "robot unavailable"
	ScriptNotFound      = "script file not found"
	MalformedScript     = "no valid movement command found"
	DispatchFailed      = "failed to send to robot"
	SimulatorFailed     = "simulator unavailable"

	BadRequestCode          = 400
	InvalidDataCode         = 402
	NotFoundErrorCode       = 404
	ConflictErrorCode       = 409
	UnprocessableCode       = 422
	InternalServerErrorCode = 500
	BadGatewayCode          = 502
	UnavailableCode         = 503
)

// AppError представляет собой стандартизированную структуру ошибки для API.
type AppError struct {
	Code         int    `json:"code"`    // HTTP статус код
	Message      string `json:"message"` // Сообщение для клиента
	Err          error  `json:"-"`       // Внутренняя ошибка, не для клиента
	IsUserFacing bool   `json:"-"`       // Флаг, указывающий, можно ли показывать `Err`
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

func (a *AppError) Unwrap() error {
	return a.Err
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(httpCode int, message string, err error, isUserFacing bool) *AppError {
	return &AppError{
		Code:         httpCode,
		Message:      message,
		Err:          err,
		IsUserFacing: isUserFacing,
	}
}

var (
	ErrDataNotFound   = errors.New("data not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInternal       = errors.New("internal error")
	ErrSessionClosing = errors.New("session is closing")
)

// FromError приводит ошибку любого слоя к AppError.
// Ошибки отправки сопоставляются со статусами по сигнальным ошибкам urscript.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrDataNotFound):
		return NewAppError(NotFoundErrorCode, NotFound, err, true)
	case errors.Is(err, ErrAlreadyExists):
		return NewAppError(ConflictErrorCode, Conflict, err, true)
	case errors.Is(err, urscript.ErrFileNotFound):
		return NewAppError(NotFoundErrorCode, ScriptNotFound, err, true)
	case errors.Is(err, urscript.ErrMalformedScript):
		return NewAppError(UnprocessableCode, MalformedScript, err, true)
	case errors.Is(err, urscript.ErrSendFailed):
		return NewAppError(BadGatewayCode, DispatchFailed, err, true)
	case errors.Is(err, urscript.ErrNotConnected),
		errors.Is(err, urscript.ErrEndpointUnreachable),
		errors.Is(err, urscript.ErrHandshakeFailed),
		errors.Is(err, urscript.ErrWorkerClosed),
		errors.Is(err, ErrSessionClosing):
		return NewAppError(UnavailableCode, RobotUnavailable, err, true)
	case errors.Is(err, simulator.ErrExecutableNotFound):
		return NewAppError(UnavailableCode, SimulatorFailed, err, true)
	}
	return NewAppError(http.StatusInternalServerError, InternalServerError, err, false)
}
