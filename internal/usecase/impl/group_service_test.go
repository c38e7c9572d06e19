package impl

import (
	"context"
	"testing"

	"hwehweme/internal/domain/entity"
	domainerrors "hwehweme/internal/domain/errors"
	"hwehweme/internal/domain/repository"
	mockRepo "hwehweme/internal/mocks/repository"
	"hwehweme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// groupServiceFixtures holds all test dependencies for group service tests.
type groupServiceFixtures struct {
	service    usecase.GroupUsecase
	txManager  *mockRepo.MockTransactionManager
	groupRepo  *mockRepo.MockGroupRepository
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestGroupService(t *testing.T) groupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)

	svc := NewGroupService(GroupServiceParams{
		TxManager:  txManager,
		GroupRepo:  groupRepo,
		DeviceRepo: deviceRepo,
		Checker:    newTestChecker(deviceRepo, shareRepo, groupRepo),
		Logger:     newDiscardLogger(),
	})

	return groupServiceFixtures{
		service:    svc,
		txManager:  txManager,
		groupRepo:  groupRepo,
		deviceRepo: deviceRepo,
	}
}

func TestGroupService_CreateGroup_DefaultThreshold(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.DeviceGroup")).
		Run(func(ctx context.Context, group *entity.DeviceGroup) {
			group.ID = uuid.New()
		}).
		Return(nil)

	group, err := fx.service.CreateGroup(ctx, ownerID, &usecase.CreateGroupInput{Name: "Family"})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultProximityThreshold, group.ProximityThreshold)
	assert.Equal(t, ownerID, group.OwnerID)
}

func TestGroupService_CreateGroup_ExplicitThreshold(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	threshold := 50

	fx.groupRepo.EXPECT().
		CreateGroup(ctx, mock.AnythingOfType("*entity.DeviceGroup")).
		Return(nil)

	group, err := fx.service.CreateGroup(ctx, uuid.New(), &usecase.CreateGroupInput{
		Name:               "Warehouse",
		ProximityThreshold: &threshold,
	})

	require.NoError(t, err)
	assert.Equal(t, 50, group.ProximityThreshold)
}

func TestGroupService_GetGroup_NonOwnerSeesNotFound(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := fx.service.GetGroup(ctx, stranger, group.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrGroupNotFound))
}

func TestGroupService_GetGroup_ReturnsMembers(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}
	members := []*entity.Device{{ID: uuid.New(), OwnerID: ownerID}}

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	fx.groupRepo.EXPECT().FindMembers(ctx, group.ID).Return(members, nil)

	detail, err := fx.service.GetGroup(ctx, ownerID, group.ID)

	require.NoError(t, err)
	assert.Equal(t, group, detail.Group)
	assert.Equal(t, members, detail.Members)
}

func TestGroupService_AddDevice_Success(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewGroupRepository().Return(mockGroupRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockGroupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
			mockGroupRepo.EXPECT().
				AddMember(ctx, mock.AnythingOfType("*entity.GroupMembership")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	membership, err := fx.service.AddDevice(ctx, ownerID, group.ID, device.ID)

	require.NoError(t, err)
	assert.Equal(t, group.ID, membership.GroupID)
	assert.Equal(t, device.ID, membership.DeviceID)
}

func TestGroupService_AddDevice_RejectsForeignDevice(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}
	foreignDevice := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}

	wantErr := errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewGroupRepository().Return(mockGroupRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockGroupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, foreignDevice.ID).Return(foreignDevice, nil)

			// Only a device the caller owns may join the caller's group.
			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
		}).
		Return(wantErr)

	_, err := fx.service.AddDevice(ctx, ownerID, group.ID, foreignDevice.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestGroupService_AddDevice_DuplicateMembershipConflicts(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	wantErr := errors.Wrap(domainerrors.ErrDuplicateMembership, "device already in group")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroupRepo := mockRepo.NewMockGroupRepository(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

			mockFactory.EXPECT().NewGroupRepository().Return(mockGroupRepo)
			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)

			mockGroupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
			mockGroupRepo.EXPECT().
				AddMember(ctx, mock.AnythingOfType("*entity.GroupMembership")).
				Return(repository.ErrDuplicateMembership)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	_, err := fx.service.AddDevice(ctx, ownerID, group.ID, device.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateMembership))
}

func TestGroupService_RemoveDevice_MissingMembershipIsReported(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}
	deviceID := uuid.New()

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	fx.groupRepo.EXPECT().
		RemoveMember(ctx, group.ID, deviceID).
		Return(repository.ErrMembershipNotFound)

	err := fx.service.RemoveDevice(ctx, ownerID, group.ID, deviceID)

	assert.True(t, errors.Is(err, domainerrors.ErrMembershipNotFound))
}

func TestGroupService_DeleteGroup_Owner(t *testing.T) {
	fx := createTestGroupService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)
	fx.groupRepo.EXPECT().DeleteGroup(ctx, group.ID).Return(nil)

	err := fx.service.DeleteGroup(ctx, ownerID, group.ID)

	assert.NoError(t, err)
}
