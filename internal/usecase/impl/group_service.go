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

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager  repository.TransactionManager
	groupRepo  repository.GroupRepository
	deviceRepo repository.DeviceRepository
	checker    *access.Checker
	logger     *slog.Logger
}

// GroupServiceParams holds dependencies for GroupService, injected by Fx.
type GroupServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	GroupRepo  repository.GroupRepository
	DeviceRepo repository.DeviceRepository
	Checker    *access.Checker
	Logger     *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(params GroupServiceParams) usecase.GroupUsecase {
	return &groupService{
		txManager:  params.TxManager,
		groupRepo:  params.GroupRepo,
		deviceRepo: params.DeviceRepo,
		checker:    params.Checker,
		logger:     params.Logger,
	}
}

func (srv *groupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGroup creates a device group owned by the user.
func (srv *groupService) CreateGroup(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGroupInput) (*entity.DeviceGroup, error) {
	threshold := entity.DefaultProximityThreshold
	if input.ProximityThreshold != nil {
		threshold = *input.ProximityThreshold
	}

	group := &entity.DeviceGroup{
		OwnerID:            ownerID,
		Name:               input.Name,
		ProximityThreshold: threshold,
	}

	if err := srv.groupRepo.CreateGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to create group")
	}

	srv.log(ctx).Info("Group created", slog.Any("groupID", group.ID), slog.Any("ownerID", ownerID))

	return group, nil
}

// ListGroups retrieves all groups owned by the user.
func (srv *groupService) ListGroups(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceGroup, error) {
	groups, err := srv.groupRepo.FindGroupsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	return groups, nil
}

// GetGroup retrieves a group with its member devices. Owner only.
func (srv *groupService) GetGroup(ctx context.Context, userID, groupID uuid.UUID) (*usecase.GroupDetail, error) {
	group, err := srv.checker.AuthorizeGroupMutation(ctx, userID, groupID)
	if err != nil {
		return nil, mapGroupAccessError(err)
	}

	members, err := srv.groupRepo.FindMembers(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load group members")
	}

	return &usecase.GroupDetail{Group: group, Members: members}, nil
}

// UpdateGroup modifies a group. Owner only.
func (srv *groupService) UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, input *usecase.UpdateGroupInput) (*entity.DeviceGroup, error) {
	group, err := srv.checker.AuthorizeGroupMutation(ctx, userID, groupID)
	if err != nil {
		return nil, mapGroupAccessError(err)
	}

	if input.Name != nil {
		group.Name = *input.Name
	}
	if input.ProximityThreshold != nil {
		group.ProximityThreshold = *input.ProximityThreshold
	}

	if err := srv.groupRepo.UpdateGroup(ctx, group); err != nil {
		return nil, errors.Wrap(err, "failed to update group")
	}

	return group, nil
}

// DeleteGroup removes a group and its memberships. Owner only.
func (srv *groupService) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	if _, err := srv.checker.AuthorizeGroupMutation(ctx, userID, groupID); err != nil {
		return mapGroupAccessError(err)
	}

	if err := srv.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		return errors.Wrap(err, "failed to delete group")
	}

	srv.log(ctx).Info("Group deleted", slog.Any("groupID", groupID), slog.Any("ownerID", userID))

	return nil
}

// AddDevice adds a device to a group. The caller must own both the group and
// the device; a full share on someone else's device grants nothing here.
// The unique index decides duplicates under concurrency, not a prior read.
func (srv *groupService) AddDevice(ctx context.Context, userID, groupID, deviceID uuid.UUID) (*entity.GroupMembership, error) {
	var membership *entity.GroupMembership

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groupRepo := repoFactory.NewGroupRepository()
		deviceRepo := repoFactory.NewDeviceRepository()

		group, err := groupRepo.FindGroupByID(ctx, groupID)
		if err != nil {
			if errors.Is(err, repository.ErrGroupNotFound) {
				return errors.Wrap(domainerrors.ErrGroupNotFound, "group not found")
			}

			return errors.Wrap(err, "failed to find group")
		}
		if group.OwnerID != userID {
			return errors.Wrap(domainerrors.ErrGroupNotFound, "group not found")
		}

		device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
			}

			return errors.Wrap(err, "failed to find device")
		}
		if device.OwnerID != userID {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		membership = &entity.GroupMembership{
			GroupID:  groupID,
			DeviceID: deviceID,
		}
		if err := groupRepo.AddMember(ctx, membership); err != nil {
			if errors.Is(err, repository.ErrDuplicateMembership) {
				return errors.Wrap(domainerrors.ErrDuplicateMembership, "device already in group")
			}

			return errors.Wrap(err, "failed to add group member")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return membership, nil
}

// RemoveDevice removes a device from a group, reporting whether the membership
// actually existed.
func (srv *groupService) RemoveDevice(ctx context.Context, userID, groupID, deviceID uuid.UUID) error {
	if _, err := srv.checker.AuthorizeGroupMutation(ctx, userID, groupID); err != nil {
		return mapGroupAccessError(err)
	}

	if err := srv.groupRepo.RemoveMember(ctx, groupID, deviceID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return errors.Wrap(domainerrors.ErrMembershipNotFound, "device is not in this group")
		}

		return errors.Wrap(err, "failed to remove group member")
	}

	return nil
}

// mapGroupAccessError converts access-core results into the API error taxonomy.
func mapGroupAccessError(err error) error {
	if errors.Is(err, repository.ErrGroupNotFound) {
		return errors.Wrap(domainerrors.ErrGroupNotFound, "group not found")
	}

	return err
}
