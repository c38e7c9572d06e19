// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when no location fix exists for a device.
var ErrLocationNotFound = errors.New("location fix not found")

// LocationRepository defines the interface for location fix persistence.
// Fixes are append-only; there are no update or delete operations.
type LocationRepository interface {
	// CreateFix persists a new location fix for a device.
	CreateFix(ctx context.Context, fix *entity.LocationFix) error

	// FindFixesByDevice retrieves up to limit fixes for a device, newest first.
	FindFixesByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.LocationFix, error)

	// FindLatestFix retrieves the most recent fix for a device.
	FindLatestFix(ctx context.Context, deviceID uuid.UUID) (*entity.LocationFix, error)
}
