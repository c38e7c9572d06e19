package usecase

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGroupInput defines the data required to create a device group.
type CreateGroupInput struct {
	Name               string
	ProximityThreshold *int // Nil selects the default threshold.
}

// UpdateGroupInput defines the mutable group fields. Nil means unchanged.
type UpdateGroupInput struct {
	Name               *string
	ProximityThreshold *int
}

// GroupDetail pairs a group with its current member devices.
type GroupDetail struct {
	Group   *entity.DeviceGroup
	Members []*entity.Device
}

// GroupUsecase defines the interface for device group management.
// All mutations are owner-only; membership grants no rights.
type GroupUsecase interface {
	CreateGroup(ctx context.Context, ownerID uuid.UUID, input *CreateGroupInput) (*entity.DeviceGroup, error)
	ListGroups(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceGroup, error)
	GetGroup(ctx context.Context, userID, groupID uuid.UUID) (*GroupDetail, error)
	UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, input *UpdateGroupInput) (*entity.DeviceGroup, error)
	DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error

	// AddDevice adds a device the user owns to a group the user owns.
	AddDevice(ctx context.Context, userID, groupID, deviceID uuid.UUID) (*entity.GroupMembership, error)

	// RemoveDevice removes a device from a group, reporting whether the
	// membership actually existed.
	RemoveDevice(ctx context.Context, userID, groupID, deviceID uuid.UUID) error
}
