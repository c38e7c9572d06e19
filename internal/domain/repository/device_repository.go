// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDevicesByOwner retrieves all devices owned by a specific user.
	FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// UpdateDevice modifies an existing device.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// TouchLastActive stamps the device's last activity time.
	TouchLastActive(ctx context.Context, deviceID uuid.UUID) error

	// DeleteDevice removes a device by its ID along with its dependent rows.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
