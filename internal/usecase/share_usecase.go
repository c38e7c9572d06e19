package usecase

import (
	"context"
	"time"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShareInput defines the data required to share a device.
// The recipient is addressed by email and resolved to a user.
type CreateShareInput struct {
	DeviceID        uuid.UUID
	SharedWithEmail string
	Permission      string
	ExpiresAt       *time.Time
}

// ShareUsecase defines the interface for the device sharing lifecycle.
type ShareUsecase interface {
	// CreateShare grants or updates access to a device for another user.
	// Sharing an already-shared (device, recipient) pair updates the existing
	// grant's permission and expiry.
	CreateShare(ctx context.Context, ownerID uuid.UUID, input *CreateShareInput) (*entity.DeviceShare, error)

	// ListSharesByOwner retrieves the shares the user has granted.
	ListSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceShare, error)

	// ListSharesWithMe retrieves the shares granted to the user.
	ListSharesWithMe(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceShare, error)

	// RevokeShare deletes a share. Owner only; non-owners see not-found.
	RevokeShare(ctx context.Context, userID, shareID uuid.UUID) error
}
