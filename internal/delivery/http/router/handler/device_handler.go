package handler

import (
	"log/slog"
	"net/http"

	"hwehweme/internal/delivery/http/response"
	"hwehweme/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device management handlers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for device registration.
type RegisterDeviceRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Type              string `json:"type" validate:"required,max=50"`
	PubliclyLocatable bool   `json:"publicly_locatable"`
}

// UpdateDeviceRequest represents the request body for device updates.
// Omitted fields stay unchanged.
type UpdateDeviceRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=100"`
	Type              *string `json:"type" validate:"omitempty,max=50"`
	BatteryLevel      *int    `json:"battery_level" validate:"omitempty,min=0,max=100"`
	PubliclyLocatable *bool   `json:"publicly_locatable"`
}

// Register handles new device registration.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		Name:              req.Name,
		Type:              req.Type,
		PubliclyLocatable: req.PubliclyLocatable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered successfully")
}

// List handles listing all devices owned by the current user.
func (h *DeviceHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices, "Devices retrieved successfully")
}

// Get handles retrieving a single device the user owns or has a share on.
func (h *DeviceHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	device, err := h.deviceUC.GetDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device retrieved successfully")
}

// Update handles device updates. Owner only.
func (h *DeviceHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), userID, deviceID, &usecase.UpdateDeviceInput{
		Name:              req.Name,
		Type:              req.Type,
		BatteryLevel:      req.BatteryLevel,
		PubliclyLocatable: req.PubliclyLocatable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device, "Device updated successfully")
}

// Delete handles device removal. Owner only.
func (h *DeviceHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device deleted successfully")
}
