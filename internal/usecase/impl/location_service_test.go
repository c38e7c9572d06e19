package impl

import (
	"context"
	"testing"
	"time"

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

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	shareRepo    *mockRepo.MockShareRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)

	svc := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		DeviceRepo:   deviceRepo,
		Checker:      newTestChecker(deviceRepo, shareRepo, groupRepo),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		deviceRepo:   deviceRepo,
		shareRepo:    shareRepo,
	}
}

func TestLocationService_ReportLocation_OwnerStampsDefaults(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.locationRepo.EXPECT().
		CreateFix(ctx, mock.AnythingOfType("*entity.LocationFix")).
		Return(nil)
	fx.deviceRepo.EXPECT().TouchLastActive(ctx, device.ID).Return(nil)

	before := time.Now()
	fix, err := fx.service.ReportLocation(ctx, ownerID, device.ID, &usecase.ReportLocationInput{
		Latitude:  25.03,
		Longitude: 121.56,
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID.String(), fix.RecordedBy)
	assert.False(t, fix.RecordedAt.Before(before))
}

func TestLocationService_ReportLocation_CrowdSourcedOnPublicDevice(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New(), PubliclyLocatable: true}
	passerby := uuid.New()
	recordedAt := time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.locationRepo.EXPECT().
		CreateFix(ctx, mock.AnythingOfType("*entity.LocationFix")).
		Return(nil)
	fx.deviceRepo.EXPECT().TouchLastActive(ctx, device.ID).Return(nil)

	fix, err := fx.service.ReportLocation(ctx, passerby, device.ID, &usecase.ReportLocationInput{
		Latitude:   25.03,
		Longitude:  121.56,
		RecordedBy: "crowd-node-17",
		RecordedAt: &recordedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "crowd-node-17", fix.RecordedBy)
	assert.Equal(t, recordedAt, fix.RecordedAt)
}

func TestLocationService_ReportLocation_PrivateDeviceHidden(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.ReportLocation(ctx, stranger, device.ID, &usecase.ReportLocationInput{
		Latitude:  25.03,
		Longitude: 121.56,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestLocationService_ReportLocation_SurvivesLostActivityStamp(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.locationRepo.EXPECT().
		CreateFix(ctx, mock.AnythingOfType("*entity.LocationFix")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		TouchLastActive(ctx, device.ID).
		Return(errors.New("connection reset"))

	_, err := fx.service.ReportLocation(ctx, ownerID, device.ID, &usecase.ReportLocationInput{
		Latitude:  25.03,
		Longitude: 121.56,
	})

	// The fix is durable; a failed activity stamp only logs.
	assert.NoError(t, err)
}

func TestLocationService_GetHistory_RequiresLocate(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	viewer := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().
		FindShare(ctx, device.ID, viewer).
		Return(&entity.DeviceShare{Permission: entity.PermissionView}, nil)

	_, err := fx.service.GetHistory(ctx, viewer, device.ID, 10)

	// A view-level share sees the device but not its locations.
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLocationService_GetHistory_ClampsLimit(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil).Twice()

	// A non-positive limit selects the default.
	fx.locationRepo.EXPECT().
		FindFixesByDevice(ctx, device.ID, 100).
		Return([]*entity.LocationFix{}, nil).
		Once()
	_, err := fx.service.GetHistory(ctx, ownerID, device.ID, 0)
	require.NoError(t, err)

	// An oversized limit is clamped to the maximum.
	fx.locationRepo.EXPECT().
		FindFixesByDevice(ctx, device.ID, 1000).
		Return([]*entity.LocationFix{}, nil).
		Once()
	_, err = fx.service.GetHistory(ctx, ownerID, device.ID, 5000)
	require.NoError(t, err)
}

func TestLocationService_GetLatest_NoFixYet(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.locationRepo.EXPECT().FindLatestFix(ctx, device.ID).Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.GetLatest(ctx, ownerID, device.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestLocationService_GetLatest_LocateShare(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	locator := uuid.New()
	fix := &entity.LocationFix{DeviceID: device.ID, Latitude: 25.03, Longitude: 121.56}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.shareRepo.EXPECT().
		FindShare(ctx, device.ID, locator).
		Return(&entity.DeviceShare{Permission: entity.PermissionLocate}, nil)
	fx.locationRepo.EXPECT().FindLatestFix(ctx, device.ID).Return(fix, nil)

	got, err := fx.service.GetLatest(ctx, locator, device.ID)

	require.NoError(t, err)
	assert.Equal(t, fix, got)
}
