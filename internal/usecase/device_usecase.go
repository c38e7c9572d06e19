package usecase

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a new device.
type RegisterDeviceInput struct {
	Name              string
	Type              string
	PubliclyLocatable bool
}

// UpdateDeviceInput defines the mutable device fields. Nil means unchanged.
type UpdateDeviceInput struct {
	Name              *string
	Type              *string
	BatteryLevel      *int
	PubliclyLocatable *bool
}

// DeviceUsecase defines the interface for device management use cases.
type DeviceUsecase interface {
	// RegisterDevice registers a new device owned by the user.
	RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	// GetDevice retrieves a device the user owns or holds at least a view share on.
	GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)

	// ListDevices retrieves all devices owned by the user.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// UpdateDevice modifies a device. Owner only.
	UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input *UpdateDeviceInput) (*entity.Device, error)

	// DeleteDevice removes a device and its dependent rows. Owner only.
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
