// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"hwehweme/internal/delivery/http/response"
	domainerrors "hwehweme/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user ID set by the auth middleware.
// On failure it returns an unwritten AppError; the caller hands it back to
// echo so the global error handler emits exactly one envelope.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.NewBaseError(
			http.StatusUnauthorized, "INVALID_TOKEN", "Invalid user ID in token", "")
	}

	return userID, nil
}

// pathUUID parses a UUID path parameter. Like currentUserID, a parse failure
// comes back as an unwritten AppError for the global error handler.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewBaseError(
			http.StatusBadRequest, "INVALID_ID", "Invalid "+name, "")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
