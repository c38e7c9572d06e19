package handler

import (
	"log/slog"
	"net/http"

	"hwehweme/internal/delivery/http/response"
	"hwehweme/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert handlers.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler.
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlertRequest represents the request body for raising an alert.
type CreateAlertRequest struct {
	DeviceID  string   `json:"device_id" validate:"required,uuid"`
	GroupID   *string  `json:"group_id" validate:"omitempty,uuid"`
	Type      string   `json:"type" validate:"required,max=50"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// Create handles raising an alert for an owned device.
func (h *AlertHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device_id")
	}

	var groupID *uuid.UUID
	if req.GroupID != nil {
		parsed, err := uuid.Parse(*req.GroupID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid group_id")
		}
		groupID = &parsed
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), userID, &usecase.CreateAlertInput{
		DeviceID:  deviceID,
		GroupID:   groupID,
		Type:      req.Type,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert, "Alert created successfully")
}

// List handles listing alerts across the user's devices. The device_id query
// parameter narrows the listing to one device; resolved alerts are included
// when the include_resolved query flag is set.
func (h *AlertHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var deviceID *uuid.UUID
	if raw := c.QueryParam("device_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid device_id")
		}
		deviceID = &parsed
	}

	includeResolved := c.QueryParam("include_resolved") == "true"

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID, deviceID, includeResolved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Alerts retrieved successfully")
}

// Resolve handles marking an alert resolved.
func (h *AlertHandler) Resolve(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	alertID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	alert, err := h.alertUC.ResolveAlert(c.Request().Context(), userID, alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert, "Alert resolved successfully")
}
