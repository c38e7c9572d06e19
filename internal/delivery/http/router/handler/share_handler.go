package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hwehweme/internal/delivery/http/response"
	"hwehweme/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler holds dependencies for device sharing handlers.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler.
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// CreateShareRequest represents the request body for sharing a device.
type CreateShareRequest struct {
	DeviceID        string     `json:"device_id" validate:"required,uuid"`
	SharedWithEmail string     `json:"shared_with_email" validate:"required,email"`
	Permission      string     `json:"permission" validate:"required,oneof=view locate full"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

// Create handles granting or updating a device share.
func (h *ShareHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device_id")
	}

	share, err := h.shareUC.CreateShare(c.Request().Context(), userID, &usecase.CreateShareInput{
		DeviceID:        deviceID,
		SharedWithEmail: req.SharedWithEmail,
		Permission:      req.Permission,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, share, "Device shared successfully")
}

// ListGranted handles listing the shares granted by the current user.
func (h *ShareHandler) ListGranted(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	shares, err := h.shareUC.ListSharesByOwner(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shares, "Shares retrieved successfully")
}

// ListReceived handles listing the shares granted to the current user.
func (h *ShareHandler) ListReceived(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	shares, err := h.shareUC.ListSharesWithMe(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shares, "Shares retrieved successfully")
}

// Revoke handles deleting a share. Owner only.
func (h *ShareHandler) Revoke(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	shareID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.shareUC.RevokeShare(c.Request().Context(), userID, shareID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Share revoked successfully")
}
