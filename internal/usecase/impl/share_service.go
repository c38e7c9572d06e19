package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hwehweme/internal/delivery/context"
	"hwehweme/internal/domain/entity"
	domainerrors "hwehweme/internal/domain/errors"
	"hwehweme/internal/domain/repository"
	"hwehweme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	txManager  repository.TransactionManager
	shareRepo  repository.ShareRepository
	deviceRepo repository.DeviceRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ShareServiceParams holds dependencies for ShareService, injected by Fx.
type ShareServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ShareRepo  repository.ShareRepository
	DeviceRepo repository.DeviceRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(params ShareServiceParams) usecase.ShareUsecase {
	return &shareService{
		txManager:  params.TxManager,
		shareRepo:  params.ShareRepo,
		deviceRepo: params.DeviceRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *shareService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShare grants or updates access to a device for another user.
// Re-sharing to the same recipient is an upsert: the existing grant's
// permission and expiry are replaced, never duplicated.
func (srv *shareService) CreateShare(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShareInput) (*entity.DeviceShare, error) {
	permission, err := entity.ParsePermissionLevel(input.Permission)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidPermissionLevel, input.Permission)
	}

	if input.ExpiresAt != nil && !input.ExpiresAt.After(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrShareExpiryInPast, "expiry must be in the future")
	}

	var share *entity.DeviceShare

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()
		userRepo := repoFactory.NewUserRepository()
		shareRepo := repoFactory.NewShareRepository()

		device, err := deviceRepo.FindDeviceByID(ctx, input.DeviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
			}

			return errors.Wrap(err, "failed to find device")
		}
		if device.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		recipient, err := userRepo.FindByEmail(ctx, input.SharedWithEmail)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "recipient not found")
			}

			return errors.Wrap(err, "failed to find recipient")
		}

		if recipient.ID == ownerID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot share a device with its owner")
		}

		share = &entity.DeviceShare{
			DeviceID:   input.DeviceID,
			OwnerID:    ownerID,
			SharedWith: recipient.ID,
			Permission: permission,
			ExpiresAt:  input.ExpiresAt,
		}

		if err := shareRepo.UpsertShare(ctx, share); err != nil {
			return errors.Wrap(err, "failed to upsert share")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Device shared",
		slog.Any("deviceID", share.DeviceID),
		slog.Any("sharedWith", share.SharedWith),
		slog.String("permission", string(share.Permission)),
	)

	return share, nil
}

// ListSharesByOwner retrieves the shares the user has granted.
func (srv *shareService) ListSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceShare, error) {
	shares, err := srv.shareRepo.FindSharesByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shares by owner")
	}

	return shares, nil
}

// ListSharesWithMe retrieves the shares granted to the user.
func (srv *shareService) ListSharesWithMe(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceShare, error) {
	shares, err := srv.shareRepo.FindSharesWithUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shares with user")
	}

	return shares, nil
}

// RevokeShare deletes a share. Only the granting owner may revoke; anyone
// else, including the recipient, sees not-found.
func (srv *shareService) RevokeShare(ctx context.Context, userID, shareID uuid.UUID) error {
	share, err := srv.shareRepo.FindShareByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			return errors.Wrap(domainerrors.ErrShareNotFound, "share not found")
		}

		return errors.Wrap(err, "failed to find share")
	}

	if share.OwnerID != userID {
		return errors.Wrap(domainerrors.ErrShareNotFound, "share not found")
	}

	if err := srv.shareRepo.DeleteShare(ctx, shareID); err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			// Lost a race with another revoke; outcome is the same.
			return nil
		}

		return errors.Wrap(err, "failed to delete share")
	}

	srv.log(ctx).Info("Share revoked", slog.Any("shareID", shareID), slog.Any("ownerID", userID))

	return nil
}
