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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	shareRepo  *mockRepo.MockShareRepository
	groupRepo  *mockRepo.MockGroupRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Checker:    newTestChecker(deviceRepo, shareRepo, groupRepo),
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		shareRepo:  shareRepo,
		groupRepo:  groupRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, ownerID, &usecase.RegisterDeviceInput{
		Name: "Backpack Tag",
		Type: "tag",
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, device.OwnerID)
	assert.Equal(t, "Backpack Tag", device.Name)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_GetDevice_ViewShareSuffices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	viewer := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().
		FindShare(ctx, device.ID, viewer).
		Return(&entity.DeviceShare{Permission: entity.PermissionView}, nil)

	got, err := fx.service.GetDevice(ctx, viewer, device.ID)

	require.NoError(t, err)
	assert.Equal(t, device, got)
}

func TestDeviceService_GetDevice_StrangerSeesNotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().FindShare(ctx, device.ID, stranger).Return(nil, repository.ErrShareNotFound)

	_, err := fx.service.GetDevice(ctx, stranger, device.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UpdateDevice_FullShareGrantsNoMutation(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	sharee := uuid.New()
	newName := "Renamed"

	// Device mutation is owner-only; the share level is never even consulted,
	// and the sharee sees not-found rather than forbidden.
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.UpdateDevice(ctx, sharee, device.ID, &usecase.UpdateDeviceInput{Name: &newName})

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_UpdateDevice_OwnerPartialUpdate(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID, Name: "Old", Type: "tag"}
	battery := 80

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().
		UpdateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	updated, err := fx.service.UpdateDevice(ctx, ownerID, device.ID, &usecase.UpdateDeviceInput{
		BatteryLevel: &battery,
	})

	require.NoError(t, err)
	assert.Equal(t, "Old", updated.Name) // untouched
	require.NotNil(t, updated.BatteryLevel)
	assert.Equal(t, 80, *updated.BatteryLevel)
}

func TestDeviceService_DeleteDevice_Owner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

	err := fx.service.DeleteDevice(ctx, ownerID, device.ID)

	assert.NoError(t, err)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	devices := []*entity.Device{{ID: uuid.New(), OwnerID: ownerID}}

	fx.deviceRepo.EXPECT().FindDevicesByOwner(ctx, ownerID).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
