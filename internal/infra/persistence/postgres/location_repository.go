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
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateFix persists a new location fix for a device.
func (repo *locationRepository) CreateFix(ctx context.Context, fix *entity.LocationFix) error {
	fixM := fromLocationDomain(fix)

	if err := repo.db.WithContext(ctx).Create(fixM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location fix")
	}

	fix.ID = fixM.ID

	return nil
}

// FindFixesByDevice retrieves up to limit fixes for a device, newest first.
func (repo *locationRepository) FindFixesByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.LocationFix, error) {
	var fixModels []*model.LocationFixModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&fixModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location fixes by device")
	}

	fixes := make([]*entity.LocationFix, 0, len(fixModels))
	for _, fixM := range fixModels {
		fixes = append(fixes, toLocationDomain(fixM))
	}

	return fixes, nil
}

// FindLatestFix retrieves the most recent fix for a device.
func (repo *locationRepository) FindLatestFix(ctx context.Context, deviceID uuid.UUID) (*entity.LocationFix, error) {
	var fixM model.LocationFixModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("recorded_at DESC").
		First(&fixM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location fix")
	}

	return toLocationDomain(&fixM), nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationFixModel to a domain LocationFix entity.
func toLocationDomain(data *model.LocationFixModel) *entity.LocationFix {
	if data == nil {
		return nil
	}

	return &entity.LocationFix{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		Altitude:       data.Altitude,
		SignalStrength: data.SignalStrength,
		RecordedBy:     data.RecordedBy,
		RecordedAt:     data.RecordedAt,
	}
}

// fromLocationDomain converts a domain LocationFix entity to a GORM LocationFixModel.
func fromLocationDomain(data *entity.LocationFix) *model.LocationFixModel {
	if data == nil {
		return nil
	}

	return &model.LocationFixModel{
		ID:             data.ID,
		DeviceID:       data.DeviceID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		Altitude:       data.Altitude,
		SignalStrength: data.SignalStrength,
		RecordedBy:     data.RecordedBy,
		RecordedAt:     data.RecordedAt,
	}
}
