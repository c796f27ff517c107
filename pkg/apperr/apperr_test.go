package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalid("name is required"), http.StatusBadRequest},
		{fmt.Errorf("load: %w", ErrNotFound), http.StatusNotFound},
		{NotFound(gorm.ErrRecordNotFound), http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("%w: GOOGLE_AI_API_KEY", ErrConfig), http.StatusInternalServerError},
		{fmt.Errorf("%w: boom", ErrUpstream), http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestJSONHidesInternalErrors(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	_ = JSON(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), errors.New("sql: secret detail"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	_ = JSON(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), Invalid("soilType is required"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"soilType is required"}`, rec.Body.String())
}

func TestWrapKeepsMessage(t *testing.T) {
	err := Wrap(ErrConfig, "Google AI API key not configured")
	assert.ErrorIs(t, err, ErrConfig)
	assert.Equal(t, "Google AI API key not configured", err.Error())

	e := echo.New()
	rec := httptest.NewRecorder()
	_ = JSON(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec), err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Google AI API key not configured"}`, rec.Body.String())
}
