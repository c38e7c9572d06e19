// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hwehweme/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for group persistence.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")
	// ErrDuplicateMembership is returned when a device is already in the group.
	ErrDuplicateMembership = errors.New("device is already a member of the group")
	// ErrMembershipNotFound is returned when a device is not in the group.
	ErrMembershipNotFound = errors.New("membership not found")
)

// GroupRepository defines the interface for device group and membership operations.
type GroupRepository interface {
	// CreateGroup persists a new device group.
	CreateGroup(ctx context.Context, group *entity.DeviceGroup) error

	// FindGroupByID retrieves a group by its unique ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.DeviceGroup, error)

	// FindGroupsByOwner retrieves all groups owned by a specific user.
	FindGroupsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceGroup, error)

	// UpdateGroup modifies an existing group.
	UpdateGroup(ctx context.Context, group *entity.DeviceGroup) error

	// DeleteGroup removes a group and its memberships.
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// AddMember links a device to a group. Returns ErrDuplicateMembership if
	// the device is already in the group.
	AddMember(ctx context.Context, membership *entity.GroupMembership) error

	// RemoveMember unlinks a device from a group. Returns ErrMembershipNotFound
	// if the device was not in the group.
	RemoveMember(ctx context.Context, groupID, deviceID uuid.UUID) error

	// FindMembers retrieves the devices currently in a group.
	FindMembers(ctx context.Context, groupID uuid.UUID) ([]*entity.Device, error)
}
