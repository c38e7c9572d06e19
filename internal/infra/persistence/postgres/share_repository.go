package postgres

import (
	"context"

	"hwehweme/internal/domain/entity"
	domainerrors "hwehweme/internal/domain/errors"
	"hwehweme/internal/domain/repository"
	"hwehweme/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shareRepository implements the repository.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{
		db: db,
	}
}

// UpsertShare creates a share, or updates the permission and expiry of the
// existing share for the same (device, recipient) pair. The conflict target is
// the composite unique index, so concurrent re-shares converge on one row.
func (repo *shareRepository) UpsertShare(ctx context.Context, share *entity.DeviceShare) error {
	shareM := fromShareDomain(share)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}, {Name: "shared_with_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"permission": shareM.Permission,
				"expires_at": shareM.ExpiresAt,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(shareM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert share")
	}

	// Re-read so the caller sees the surviving row, not the candidate one.
	persisted, err := repo.FindShare(ctx, share.DeviceID, share.SharedWith)
	if err != nil {
		return errors.Wrap(err, "failed to reload upserted share")
	}
	*share = *persisted

	return nil
}

// FindShareByID retrieves a share by its unique ID.
func (repo *shareRepository) FindShareByID(ctx context.Context, id uuid.UUID) (*entity.DeviceShare, error) {
	var shareM model.DeviceShareModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find share by ID")
	}

	return toShareDomain(&shareM), nil
}

// FindShare retrieves the share for a specific (device, recipient) pair.
func (repo *shareRepository) FindShare(ctx context.Context, deviceID, sharedWithID uuid.UUID) (*entity.DeviceShare, error) {
	var shareM model.DeviceShareModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND shared_with_id = ?", deviceID, sharedWithID).
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find share")
	}

	return toShareDomain(&shareM), nil
}

// FindSharesByOwner retrieves all shares granted by a user.
func (repo *shareRepository) FindSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceShare, error) {
	var shareModels []*model.DeviceShareModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shareModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shares by owner")
	}

	return toShareDomainSlice(shareModels), nil
}

// FindSharesWithUser retrieves all shares granted to a user.
func (repo *shareRepository) FindSharesWithUser(ctx context.Context, sharedWithID uuid.UUID) ([]*entity.DeviceShare, error) {
	var shareModels []*model.DeviceShareModel

	if err := repo.db.WithContext(ctx).
		Where("shared_with_id = ?", sharedWithID).
		Order("created_at DESC").
		Find(&shareModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shares with user")
	}

	return toShareDomainSlice(shareModels), nil
}

// DeleteShare removes a share by its ID.
func (repo *shareRepository) DeleteShare(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceShareModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete share")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShareNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShareDomain converts a GORM DeviceShareModel to a domain DeviceShare entity.
func toShareDomain(data *model.DeviceShareModel) *entity.DeviceShare {
	if data == nil {
		return nil
	}

	return &entity.DeviceShare{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		OwnerID:    data.OwnerID,
		SharedWith: data.SharedWithID,
		Permission: entity.PermissionLevel(data.Permission),
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toShareDomainSlice(models []*model.DeviceShareModel) []*entity.DeviceShare {
	shares := make([]*entity.DeviceShare, 0, len(models))
	for _, shareM := range models {
		shares = append(shares, toShareDomain(shareM))
	}

	return shares
}

// fromShareDomain converts a domain DeviceShare entity to a GORM DeviceShareModel.
func fromShareDomain(data *entity.DeviceShare) *model.DeviceShareModel {
	if data == nil {
		return nil
	}

	return &model.DeviceShareModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		OwnerID:      data.OwnerID,
		SharedWithID: data.SharedWith,
		Permission:   string(data.Permission),
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
