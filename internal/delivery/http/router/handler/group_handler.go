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

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for device group handlers.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler.
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	ProximityThreshold *int   `json:"proximity_threshold" validate:"omitempty,min=1"`
}

// UpdateGroupRequest represents the request body for group updates.
type UpdateGroupRequest struct {
	Name               *string `json:"name" validate:"omitempty,max=100"`
	ProximityThreshold *int    `json:"proximity_threshold" validate:"omitempty,min=1"`
}

// AddDeviceRequest represents the request body for adding a device to a group.
type AddDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,uuid"`
}

// Create handles group creation.
func (h *GroupHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), userID, &usecase.CreateGroupInput{
		Name:               req.Name,
		ProximityThreshold: req.ProximityThreshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, group, "Group created successfully")
}

// List handles listing all groups owned by the current user.
func (h *GroupHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groups, err := h.groupUC.ListGroups(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Groups retrieved successfully")
}

// Get handles retrieving a group with its member devices.
func (h *GroupHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.groupUC.GetGroup(c.Request().Context(), userID, groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"group":   detail.Group,
		"members": detail.Members,
	}, "Group retrieved successfully")
}

// Update handles group updates. Owner only.
func (h *GroupHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), userID, groupID, &usecase.UpdateGroupInput{
		Name:               req.Name,
		ProximityThreshold: req.ProximityThreshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Group updated successfully")
}

// Delete handles group removal. Owner only.
func (h *GroupHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.groupUC.DeleteGroup(c.Request().Context(), userID, groupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Group deleted successfully")
}

// AddDevice handles adding an owned device to an owned group.
func (h *GroupHandler) AddDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AddDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid membership input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device_id")
	}

	membership, err := h.groupUC.AddDevice(c.Request().Context(), userID, groupID, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, membership, "Device added to group successfully")
}

// RemoveDevice handles removing a device from a group.
func (h *GroupHandler) RemoveDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	groupID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "deviceID")
	if err != nil {
		return err
	}

	if err := h.groupUC.RemoveDevice(c.Request().Context(), userID, groupID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device removed from group successfully")
}
