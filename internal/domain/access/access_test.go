package access

import (
	"context"
	"testing"
	"time"

	"hwehweme/internal/domain/entity"
	"hwehweme/internal/domain/repository"
	mockRepo "hwehweme/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFixtures struct {
	checker    *Checker
	deviceRepo *mockRepo.MockDeviceRepository
	shareRepo  *mockRepo.MockShareRepository
	groupRepo  *mockRepo.MockGroupRepository
	now        time.Time
}

func createTestChecker(t *testing.T) checkerFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	checker := NewChecker(deviceRepo, shareRepo, groupRepo, func() time.Time { return now })

	return checkerFixtures{
		checker:    checker,
		deviceRepo: deviceRepo,
		shareRepo:  shareRepo,
		groupRepo:  groupRepo,
		now:        now,
	}
}

func TestAuthorizeDeviceAccess_OwnerAlwaysPasses(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	got, err := fx.checker.AuthorizeDeviceAccess(ctx, ownerID, device.ID, entity.PermissionFull)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestAuthorizeDeviceAccess_NoShareReadsAsNotFound(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().FindShare(ctx, device.ID, stranger).Return(nil, repository.ErrShareNotFound)

	_, err := fx.checker.AuthorizeDeviceAccess(ctx, stranger, device.ID, entity.PermissionView)

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestAuthorizeDeviceAccess_ShareSatisfiesRequiredLevel(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	viewer := uuid.New()
	share := &entity.DeviceShare{
		DeviceID:   device.ID,
		SharedWith: viewer,
		Permission: entity.PermissionView,
	}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().FindShare(ctx, device.ID, viewer).Return(share, nil)

	got, err := fx.checker.AuthorizeDeviceAccess(ctx, viewer, device.ID, entity.PermissionView)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestAuthorizeDeviceAccess_InsufficientShareIsDenied(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	viewer := uuid.New()
	share := &entity.DeviceShare{
		DeviceID:   device.ID,
		SharedWith: viewer,
		Permission: entity.PermissionView,
	}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().FindShare(ctx, device.ID, viewer).Return(share, nil)

	_, err := fx.checker.AuthorizeDeviceAccess(ctx, viewer, device.ID, entity.PermissionLocate)

	// An existing but too-weak share is denied, not hidden.
	assert.ErrorIs(t, err, ErrDenied)
}

func TestAuthorizeDeviceAccess_ExpiredShareReadsAsAbsent(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	viewer := uuid.New()
	expired := fx.now.Add(-time.Minute)
	share := &entity.DeviceShare{
		DeviceID:   device.ID,
		SharedWith: viewer,
		Permission: entity.PermissionFull,
		ExpiresAt:  &expired,
	}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().FindShare(ctx, device.ID, viewer).Return(share, nil)

	_, err := fx.checker.AuthorizeDeviceAccess(ctx, viewer, device.ID, entity.PermissionView)

	// Even a full share grants nothing once expired, and it hides the device.
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestAuthorizeLocationWrite_OwnerPasses(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	got, err := fx.checker.AuthorizeLocationWrite(ctx, ownerID, device.ID)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestAuthorizeLocationWrite_PubliclyLocatableAcceptsAnyone(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New(), PubliclyLocatable: true}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	got, err := fx.checker.AuthorizeLocationWrite(ctx, stranger, device.ID)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestAuthorizeLocationWrite_PrivateDeviceHidesFromStrangers(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New(), PubliclyLocatable: false}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.checker.AuthorizeLocationWrite(ctx, stranger, device.ID)

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestAuthorizeGroupMutation_OwnerOnly(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	ownerID := uuid.New()
	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: ownerID}

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	got, err := fx.checker.AuthorizeGroupMutation(ctx, ownerID, group.ID)

	require.NoError(t, err)
	assert.Equal(t, group, got)
}

func TestAuthorizeGroupMutation_NonOwnerSeesNotFound(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	group := &entity.DeviceGroup{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.groupRepo.EXPECT().FindGroupByID(ctx, group.ID).Return(group, nil)

	_, err := fx.checker.AuthorizeGroupMutation(ctx, stranger, group.ID)

	assert.ErrorIs(t, err, repository.ErrGroupNotFound)
}

func TestResolveAlertAuthority_SharesGrantNothing(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	sharee := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	// Even a full-level sharee has no alert authority; no share lookup happens.
	_, err := fx.checker.ResolveAlertAuthority(ctx, sharee, device.ID)

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestResolveAlertAuthority_Owner(t *testing.T) {
	fx := createTestChecker(t)
	ctx := context.Background()

	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	got, err := fx.checker.ResolveAlertAuthority(ctx, ownerID, device.ID)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}
