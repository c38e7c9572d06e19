package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hwehweme/internal/delivery/http/middleware"
	domainerrors "hwehweme/internal/domain/errors"
	mockUsecase "hwehweme/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeviceHandler_Get_MalformedIDWritesSingleEnvelope(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: deviceUC, logger: newDiscardLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/devices/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set("userID", uuid.New())

	err := h.Get(c)

	// The handler must hand the failure back unwritten; the usecase mock has
	// no expectations, so any call to it fails the test.
	require.Error(t, err)
	assert.Zero(t, rec.Body.Len())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_ID", appErr.ErrorCode())

	// The global error handler turns it into exactly one envelope.
	middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, `"success"`))
	assert.Contains(t, body, "INVALID_ID")
	assert.NotContains(t, body, "Device retrieved")
}

func TestDeviceHandler_Get_MissingIdentityIsUnauthorized(t *testing.T) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := &DeviceHandler{deviceUC: deviceUC, logger: newDiscardLogger()}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/devices/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.Get(c)

	require.Error(t, err)
	assert.Zero(t, rec.Body.Len())

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
}
