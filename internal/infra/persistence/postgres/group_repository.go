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

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup persists a new device group.
func (repo *groupRepository) CreateGroup(ctx context.Context, group *entity.DeviceGroup) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required group information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindGroupByID retrieves a group by its unique ID.
func (repo *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.DeviceGroup, error) {
	var groupM model.DeviceGroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by ID")
	}

	return toGroupDomain(&groupM), nil
}

// FindGroupsByOwner retrieves all groups owned by a specific user.
func (repo *groupRepository) FindGroupsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceGroup, error) {
	var groupModels []*model.DeviceGroupModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find groups by owner")
	}

	groups := make([]*entity.DeviceGroup, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

// UpdateGroup modifies an existing group.
func (repo *groupRepository) UpdateGroup(ctx context.Context, group *entity.DeviceGroup) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceGroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":                group.Name,
			"proximity_threshold": group.ProximityThreshold,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// DeleteGroup removes a group. Memberships cascade through foreign keys.
func (repo *groupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceGroupModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete group")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// AddMember links a device to a group. The composite unique index turns a
// duplicate add into ErrDuplicateMembership regardless of concurrent writers.
func (repo *groupRepository) AddMember(ctx context.Context, membership *entity.GroupMembership) error {
	memberM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMembership
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add group member")
	}

	membership.ID = memberM.ID
	membership.AddedAt = memberM.AddedAt

	return nil
}

// RemoveMember unlinks a device from a group.
func (repo *groupRepository) RemoveMember(ctx context.Context, groupID, deviceID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("group_id = ? AND device_id = ?", groupID, deviceID).
		Delete(&model.GroupMembershipModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove group member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// FindMembers retrieves the devices currently in a group.
func (repo *groupRepository) FindMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN group_memberships ON group_memberships.device_id = devices.id").
		Where("group_memberships.group_id = ?", groupID).
		Order("group_memberships.added_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find group members")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM DeviceGroupModel to a domain DeviceGroup entity.
func toGroupDomain(data *model.DeviceGroupModel) *entity.DeviceGroup {
	if data == nil {
		return nil
	}

	return &entity.DeviceGroup{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		ProximityThreshold: data.ProximityThreshold,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromGroupDomain converts a domain DeviceGroup entity to a GORM DeviceGroupModel.
func fromGroupDomain(data *entity.DeviceGroup) *model.DeviceGroupModel {
	if data == nil {
		return nil
	}

	return &model.DeviceGroupModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		ProximityThreshold: data.ProximityThreshold,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromMembershipDomain converts a domain GroupMembership entity to a GORM GroupMembershipModel.
func fromMembershipDomain(data *entity.GroupMembership) *model.GroupMembershipModel {
	if data == nil {
		return nil
	}

	return &model.GroupMembershipModel{
		ID:       data.ID,
		GroupID:  data.GroupID,
		DeviceID: data.DeviceID,
		AddedAt:  data.AddedAt,
	}
}
