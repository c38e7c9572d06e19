package impl

import (
	"context"
	"log/slog"

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

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	checker    *access.Checker
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Checker    *access.Checker
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		checker:    params.Checker,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a new device owned by the user.
func (srv *deviceService) RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	device := &entity.Device{
		OwnerID:           ownerID,
		Name:              input.Name,
		Type:              input.Type,
		PubliclyLocatable: input.PubliclyLocatable,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Info("Device registered", slog.Any("deviceID", device.ID), slog.Any("ownerID", ownerID))

	return device, nil
}

// GetDevice retrieves a device the user owns or holds at least a view share on.
func (srv *deviceService) GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.checker.AuthorizeDeviceAccess(ctx, userID, deviceID, entity.PermissionView)
	if err != nil {
		return nil, mapDeviceAccessError(err)
	}

	return device, nil
}

// ListDevices retrieves all devices owned by the user.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindDevicesByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// UpdateDevice modifies a device. Owner only; holders of a full share still
// cannot mutate the device record itself.
func (srv *deviceService) UpdateDevice(ctx context.Context, userID, deviceID uuid.UUID, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := srv.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		device.Name = *input.Name
	}
	if input.Type != nil {
		device.Type = *input.Type
	}
	if input.BatteryLevel != nil {
		device.BatteryLevel = input.BatteryLevel
	}
	if input.PubliclyLocatable != nil {
		device.PubliclyLocatable = *input.PubliclyLocatable
	}

	if err := srv.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}

	return device, nil
}

// DeleteDevice removes a device and its dependent rows. Owner only.
func (srv *deviceService) DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := srv.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device deleted", slog.Any("deviceID", deviceID), slog.Any("ownerID", userID))

	return nil
}

// ownedDevice loads a device and requires the caller to be its owner.
// Non-owners see not-found, shares notwithstanding.
func (srv *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.OwnerID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	}

	return device, nil
}

// mapDeviceAccessError converts access-core results into the API error taxonomy.
func mapDeviceAccessError(err error) error {
	switch {
	case errors.Is(err, access.ErrDenied):
		return errors.Wrap(domainerrors.ErrForbidden, "insufficient share permission")
	case errors.Is(err, repository.ErrDeviceNotFound):
		return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	default:
		return err
	}
}
