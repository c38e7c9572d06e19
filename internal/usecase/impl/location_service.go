package impl

import (
	"context"
	"log/slog"
	"time"

	"hwehweme/config"
	deliverycontext "hwehweme/internal/delivery/context"
	"hwehweme/internal/domain/access"
	"hwehweme/internal/domain/entity"
	domainerrors "hwehweme/internal/domain/errors"
	"hwehweme/internal/domain/repository"
	"hwehweme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	deviceRepo   repository.DeviceRepository
	checker      *access.Checker
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	DeviceRepo   repository.DeviceRepository
	Checker      *access.Checker
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		deviceRepo:   params.DeviceRepo,
		checker:      params.Checker,
		defaultLimit: params.Config.Location.HistoryDefaultLimit,
		maxLimit:     params.Config.Location.HistoryMaxLimit,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportLocation appends a fix for the device and stamps its activity time.
func (srv *locationService) ReportLocation(ctx context.Context, userID, deviceID uuid.UUID, input *usecase.ReportLocationInput) (*entity.LocationFix, error) {
	if _, err := srv.checker.AuthorizeLocationWrite(ctx, userID, deviceID); err != nil {
		return nil, mapDeviceAccessError(err)
	}

	recordedAt := time.Now()
	if input.RecordedAt != nil {
		recordedAt = *input.RecordedAt
	}

	recordedBy := input.RecordedBy
	if recordedBy == "" {
		recordedBy = userID.String()
	}

	fix := &entity.LocationFix{
		DeviceID:       deviceID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Accuracy:       input.Accuracy,
		Altitude:       input.Altitude,
		SignalStrength: input.SignalStrength,
		RecordedBy:     recordedBy,
		RecordedAt:     recordedAt,
	}

	if err := srv.locationRepo.CreateFix(ctx, fix); err != nil {
		return nil, errors.Wrap(err, "failed to create location fix")
	}

	if err := srv.deviceRepo.TouchLastActive(ctx, deviceID); err != nil {
		// The fix is already durable; a lost activity stamp is not worth failing the report.
		srv.log(ctx).Warn("Failed to stamp device activity", slog.Any("deviceID", deviceID), slog.Any("error", err))
	}

	return fix, nil
}

// GetHistory retrieves up to limit fixes, newest first.
// Non-owners need an active share at the locate level or above.
func (srv *locationService) GetHistory(ctx context.Context, userID, deviceID uuid.UUID, limit int) ([]*entity.LocationFix, error) {
	if _, err := srv.checker.AuthorizeDeviceAccess(ctx, userID, deviceID, entity.PermissionLocate); err != nil {
		return nil, mapDeviceAccessError(err)
	}

	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	fixes, err := srv.locationRepo.FindFixesByDevice(ctx, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load location history")
	}

	return fixes, nil
}

// GetLatest retrieves the most recent fix for the device.
func (srv *locationService) GetLatest(ctx context.Context, userID, deviceID uuid.UUID) (*entity.LocationFix, error) {
	if _, err := srv.checker.AuthorizeDeviceAccess(ctx, userID, deviceID, entity.PermissionLocate); err != nil {
		return nil, mapDeviceAccessError(err)
	}

	fix, err := srv.locationRepo.FindLatestFix(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no location reported yet")
		}

		return nil, errors.Wrap(err, "failed to load latest location")
	}

	return fix, nil
}
