// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrShareNotFound is returned when a share is not found.
var ErrShareNotFound = errors.New("share not found")

// ShareRepository defines the interface for device share persistence.
type ShareRepository interface {
	// UpsertShare creates a share, or updates the permission and expiry of the
	// existing share for the same (device, recipient) pair.
	UpsertShare(ctx context.Context, share *entity.DeviceShare) error

	// FindShareByID retrieves a share by its unique ID.
	FindShareByID(ctx context.Context, id uuid.UUID) (*entity.DeviceShare, error)

	// FindShare retrieves the share for a specific (device, recipient) pair.
	FindShare(ctx context.Context, deviceID, sharedWithID uuid.UUID) (*entity.DeviceShare, error)

	// FindSharesByOwner retrieves all shares granted by a user.
	FindSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceShare, error)

	// FindSharesWithUser retrieves all shares granted to a user.
	FindSharesWithUser(ctx context.Context, sharedWithID uuid.UUID) ([]*entity.DeviceShare, error)

	// DeleteShare removes a share by its ID.
	DeleteShare(ctx context.Context, id uuid.UUID) error
}
