// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert is not found.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the interface for alert persistence.
type AlertRepository interface {
	// CreateAlert persists a new alert.
	CreateAlert(ctx context.Context, alert *entity.Alert) error

	// FindAlertByID retrieves an alert by its unique ID.
	FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)

	// FindAlertsByDevices retrieves alerts for any of the given devices,
	// newest first. Resolved alerts are included only when includeResolved is set.
	FindAlertsByDevices(ctx context.Context, deviceIDs []uuid.UUID, includeResolved bool) ([]*entity.Alert, error)

	// UpdateAlert modifies an existing alert.
	UpdateAlert(ctx context.Context, alert *entity.Alert) error
}
