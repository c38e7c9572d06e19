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

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// CreateAlert persists a new alert.
func (repo *alertRepository) CreateAlert(ctx context.Context, alert *entity.Alert) error {
	alertM := fromAlertDomain(alert)

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindAlertByID retrieves an alert by its unique ID.
func (repo *alertRepository) FindAlertByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alertM model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alertM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	return toAlertDomain(&alertM), nil
}

// FindAlertsByDevices retrieves alerts for any of the given devices, newest first.
func (repo *alertRepository) FindAlertsByDevices(ctx context.Context, deviceIDs []uuid.UUID, includeResolved bool) ([]*entity.Alert, error) {
	if len(deviceIDs) == 0 {
		return []*entity.Alert{}, nil
	}

	query := repo.db.WithContext(ctx).
		Where("device_id IN ?", deviceIDs)
	if !includeResolved {
		query = query.Where("resolved = ?", false)
	}

	var alertModels []*model.AlertModel
	if err := query.
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alerts by devices")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// UpdateAlert modifies an existing alert.
func (repo *alertRepository) UpdateAlert(ctx context.Context, alert *entity.Alert) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ?", alert.ID).
		Updates(map[string]any{
			"resolved":    alert.Resolved,
			"resolved_at": alert.ResolvedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		GroupID:    data.GroupID,
		Type:       data.Type,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Resolved:   data.Resolved,
		CreatedAt:  data.CreatedAt,
		ResolvedAt: data.ResolvedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:         data.ID,
		DeviceID:   data.DeviceID,
		GroupID:    data.GroupID,
		Type:       data.Type,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Resolved:   data.Resolved,
		CreatedAt:  data.CreatedAt,
		ResolvedAt: data.ResolvedAt,
	}
}
