package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hwehweme/internal/delivery/http/response"
	"hwehweme/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location reporting and history handlers.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationRequest represents an inbound location fix.
type ReportLocationRequest struct {
	Latitude       float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64    `json:"longitude" validate:"min=-180,max=180"`
	Accuracy       *float64   `json:"accuracy" validate:"omitempty,min=0"`
	Altitude       *float64   `json:"altitude"`
	SignalStrength *int       `json:"signal_strength"`
	RecordedBy     string     `json:"recorded_by" validate:"omitempty,max=100"`
	RecordedAt     *time.Time `json:"recorded_at"`
}

// Report handles an inbound location fix for a device.
func (h *LocationHandler) Report(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	fix, err := h.locationUC.ReportLocation(c.Request().Context(), userID, deviceID, &usecase.ReportLocationInput{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Accuracy:       req.Accuracy,
		Altitude:       req.Altitude,
		SignalStrength: req.SignalStrength,
		RecordedBy:     req.RecordedBy,
		RecordedAt:     req.RecordedAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fix, "Location reported successfully")
}

// History handles retrieving recent fixes for a device, newest first.
// The optional limit query parameter caps the number of fixes returned.
func (h *LocationHandler) History(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	fixes, err := h.locationUC.GetHistory(c.Request().Context(), userID, deviceID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fixes, "Location history retrieved successfully")
}

// Latest handles retrieving the most recent fix for a device.
func (h *LocationHandler) Latest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	fix, err := h.locationUC.GetLatest(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fix, "Latest location retrieved successfully")
}
