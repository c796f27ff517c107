package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropcast/logger"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("invalid request")
	ErrUnauthorized = errors.New("user not authenticated")
	ErrConfig       = errors.New("server misconfigured")
	ErrUpstream     = errors.New("upstream failure")
)

// Wrap tags a caller-facing message with one of the kinds above.
func Wrap(kind error, format string, args ...any) error {
	return &withMsg{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) error { return Wrap(ErrInvalid, format, args...) }

type withMsg struct {
	kind error
	msg  string
}

func (e *withMsg) Error() string { return e.msg }
func (e *withMsg) Unwrap() error { return e.kind }

// NotFound maps gorm's missing-row error to ErrNotFound and passes others through.
func NotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes {"error": ...} with the status err maps to. Internal errors
// are logged and their text is not echoed back.
func JSON(c echo.Context, err error) error {
	st := Status(err)
	msg := err.Error()
	if st == http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		if !errors.Is(err, ErrConfig) {
			msg = "internal error"
		}
	}
	return c.JSON(st, map[string]string{"error": msg})
}
