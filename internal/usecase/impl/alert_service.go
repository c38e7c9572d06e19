package impl

import (
	"context"
	"log/slog"
	"time"

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

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo  repository.AlertRepository
	deviceRepo repository.DeviceRepository
	checker    *access.Checker
	logger     *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo  repository.AlertRepository
	DeviceRepo repository.DeviceRepository
	Checker    *access.Checker
	Logger     *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo:  params.AlertRepo,
		deviceRepo: params.DeviceRepo,
		checker:    params.Checker,
		logger:     params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAlert raises an alert for a device the user owns.
func (srv *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, input *usecase.CreateAlertInput) (*entity.Alert, error) {
	if _, err := srv.checker.ResolveAlertAuthority(ctx, userID, input.DeviceID); err != nil {
		return nil, mapDeviceAccessError(err)
	}

	alert := &entity.Alert{
		DeviceID:  input.DeviceID,
		GroupID:   input.GroupID,
		Type:      input.Type,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if err := srv.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create alert")
	}

	srv.log(ctx).Info("Alert raised",
		slog.Any("alertID", alert.ID),
		slog.Any("deviceID", alert.DeviceID),
		slog.String("type", alert.Type),
	)

	return alert, nil
}

// ListAlerts retrieves alerts across all devices the user owns, newest first.
// The device filter intersects with the caller's own devices, so filtering by
// a device the caller does not own yields an empty listing.
func (srv *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, deviceID *uuid.UUID, includeResolved bool) ([]*entity.Alert, error) {
	devices, err := srv.deviceRepo.FindDevicesByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices for alerts")
	}

	deviceIDs := make([]uuid.UUID, 0, len(devices))
	for _, device := range devices {
		if deviceID != nil && device.ID != *deviceID {
			continue
		}
		deviceIDs = append(deviceIDs, device.ID)
	}

	if len(deviceIDs) == 0 {
		return []*entity.Alert{}, nil
	}

	alerts, err := srv.alertRepo.FindAlertsByDevices(ctx, deviceIDs, includeResolved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// ResolveAlert flips an alert to resolved and stamps the resolution time.
// Resolution never deletes history; resolving twice is a no-op.
func (srv *alertService) ResolveAlert(ctx context.Context, userID, alertID uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.alertRepo.FindAlertByID(ctx, alertID)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "alert not found")
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	if _, err := srv.checker.ResolveAlertAuthority(ctx, userID, alert.DeviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// Hide alerts on devices the caller does not own.
			return nil, errors.Wrap(domainerrors.ErrAlertNotFound, "alert not found")
		}

		return nil, err
	}

	if alert.Resolved {
		return alert, nil
	}

	now := time.Now()
	alert.Resolved = true
	alert.ResolvedAt = &now

	if err := srv.alertRepo.UpdateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to update alert")
	}

	srv.log(ctx).Info("Alert resolved", slog.Any("alertID", alert.ID), slog.Any("userID", userID))

	return alert, nil
}
