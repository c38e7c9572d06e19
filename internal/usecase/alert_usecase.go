package usecase

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAlertInput defines the data required to raise an alert.
type CreateAlertInput struct {
	DeviceID  uuid.UUID
	GroupID   *uuid.UUID
	Type      string
	Latitude  *float64
	Longitude *float64
}

// AlertUsecase defines the interface for alert management.
// Alert authority belongs to device owners only.
type AlertUsecase interface {
	// CreateAlert raises an alert for a device the user owns.
	CreateAlert(ctx context.Context, userID uuid.UUID, input *CreateAlertInput) (*entity.Alert, error)

	// ListAlerts retrieves alerts across all devices the user owns, newest
	// first. A non-nil deviceID narrows the listing to that device; resolved
	// alerts are included only when includeResolved is set.
	ListAlerts(ctx context.Context, userID uuid.UUID, deviceID *uuid.UUID, includeResolved bool) ([]*entity.Alert, error)

	// ResolveAlert flips an alert to resolved and stamps the resolution time.
	ResolveAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error)
}
