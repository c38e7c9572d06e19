package usecase

import (
	"context"
	"time"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput defines a single inbound location fix.
type ReportLocationInput struct {
	Latitude       float64
	Longitude      float64
	Accuracy       *float64
	Altitude       *float64
	SignalStrength *int
	RecordedBy     string
	RecordedAt     *time.Time // Nil means the server stamps receipt time.
}

// LocationUsecase defines the interface for location reporting and history reads.
type LocationUsecase interface {
	// ReportLocation appends a fix for the device. Permitted for the owner, or
	// for anyone when the device is publicly locatable.
	ReportLocation(ctx context.Context, userID, deviceID uuid.UUID, input *ReportLocationInput) (*entity.LocationFix, error)

	// GetHistory retrieves up to limit fixes, newest first. Requires the
	// locate permission level for non-owners. A non-positive limit selects
	// the configured default.
	GetHistory(ctx context.Context, userID, deviceID uuid.UUID, limit int) ([]*entity.LocationFix, error)

	// GetLatest retrieves the most recent fix. Requires locate for non-owners.
	GetLatest(ctx context.Context, userID, deviceID uuid.UUID) (*entity.LocationFix, error)
}
