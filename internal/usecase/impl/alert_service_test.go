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

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service    usecase.AlertUsecase
	alertRepo  *mockRepo.MockAlertRepository
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	groupRepo := mockRepo.NewMockGroupRepository(t)

	svc := NewAlertService(AlertServiceParams{
		AlertRepo:  alertRepo,
		DeviceRepo: deviceRepo,
		Checker:    newTestChecker(deviceRepo, shareRepo, groupRepo),
		Logger:     newDiscardLogger(),
	})

	return alertServiceFixtures{
		service:    svc,
		alertRepo:  alertRepo,
		deviceRepo: deviceRepo,
	}
}

func TestAlertService_CreateAlert_Owner(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}
	lat, lon := 25.03, 121.56

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.alertRepo.EXPECT().
		CreateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(ctx context.Context, alert *entity.Alert) {
			alert.ID = uuid.New()
		}).
		Return(nil)

	alert, err := fx.service.CreateAlert(ctx, ownerID, &usecase.CreateAlertInput{
		DeviceID:  device.ID,
		Type:      "left_behind",
		Latitude:  &lat,
		Longitude: &lon,
	})

	require.NoError(t, err)
	assert.Equal(t, device.ID, alert.DeviceID)
	assert.Equal(t, "left_behind", alert.Type)
	assert.False(t, alert.Resolved)
}

func TestAlertService_CreateAlert_NonOwnerHidden(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	stranger := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.CreateAlert(ctx, stranger, &usecase.CreateAlertInput{
		DeviceID: device.ID,
		Type:     "left_behind",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestAlertService_ListAlerts_CollectsOwnedDevices(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), OwnerID: userID},
		{ID: uuid.New(), OwnerID: userID},
	}
	alerts := []*entity.Alert{{ID: uuid.New(), DeviceID: devices[0].ID}}

	fx.deviceRepo.EXPECT().FindDevicesByOwner(ctx, userID).Return(devices, nil)
	fx.alertRepo.EXPECT().
		FindAlertsByDevices(ctx, []uuid.UUID{devices[0].ID, devices[1].ID}, false).
		Return(alerts, nil)

	got, err := fx.service.ListAlerts(ctx, userID, nil, false)

	require.NoError(t, err)
	assert.Equal(t, alerts, got)
}

func TestAlertService_ListAlerts_FiltersByDevice(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), OwnerID: userID},
		{ID: uuid.New(), OwnerID: userID},
	}
	alerts := []*entity.Alert{{ID: uuid.New(), DeviceID: devices[1].ID}}

	fx.deviceRepo.EXPECT().FindDevicesByOwner(ctx, userID).Return(devices, nil)
	fx.alertRepo.EXPECT().
		FindAlertsByDevices(ctx, []uuid.UUID{devices[1].ID}, true).
		Return(alerts, nil)

	got, err := fx.service.ListAlerts(ctx, userID, &devices[1].ID, true)

	require.NoError(t, err)
	assert.Equal(t, alerts, got)
}

func TestAlertService_ListAlerts_ForeignDeviceFilterIsEmpty(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{{ID: uuid.New(), OwnerID: userID}}
	foreign := uuid.New()

	// The filter intersects with the caller's devices; no alert query runs.
	fx.deviceRepo.EXPECT().FindDevicesByOwner(ctx, userID).Return(devices, nil)

	got, err := fx.service.ListAlerts(ctx, userID, &foreign, false)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAlertService_ResolveAlert_StampsResolution(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}
	alert := &entity.Alert{ID: uuid.New(), DeviceID: device.ID}

	fx.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.alertRepo.EXPECT().
		UpdateAlert(ctx, mock.AnythingOfType("*entity.Alert")).
		Return(nil)

	before := time.Now()
	resolved, err := fx.service.ResolveAlert(ctx, ownerID, alert.ID)

	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	require.NotNil(t, resolved.ResolvedAt)
	assert.False(t, resolved.ResolvedAt.Before(before))
}

func TestAlertService_ResolveAlert_Idempotent(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}
	resolvedAt := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	alert := &entity.Alert{
		ID:         uuid.New(),
		DeviceID:   device.ID,
		Resolved:   true,
		ResolvedAt: &resolvedAt,
	}

	fx.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	// No UpdateAlert expectation: resolving twice must not write again.
	got, err := fx.service.ResolveAlert(ctx, ownerID, alert.ID)

	require.NoError(t, err)
	assert.Equal(t, &resolvedAt, got.ResolvedAt)
}

func TestAlertService_ResolveAlert_ForeignAlertHidden(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	alert := &entity.Alert{ID: uuid.New(), DeviceID: device.ID}
	stranger := uuid.New()

	fx.alertRepo.EXPECT().FindAlertByID(ctx, alert.ID).Return(alert, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.ResolveAlert(ctx, stranger, alert.ID)

	// Alerts on devices the caller does not own read as absent.
	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}

func TestAlertService_ResolveAlert_Missing(t *testing.T) {
	fx := createTestAlertService(t)

	ctx := context.Background()
	alertID := uuid.New()

	fx.alertRepo.EXPECT().FindAlertByID(ctx, alertID).Return(nil, repository.ErrAlertNotFound)

	_, err := fx.service.ResolveAlert(ctx, uuid.New(), alertID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlertNotFound))
}
