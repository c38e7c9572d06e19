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

// shareServiceFixtures holds all test dependencies for share service tests.
type shareServiceFixtures struct {
	service    usecase.ShareUsecase
	txManager  *mockRepo.MockTransactionManager
	shareRepo  *mockRepo.MockShareRepository
	deviceRepo *mockRepo.MockDeviceRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestShareService(t *testing.T) shareServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	shareRepo := mockRepo.NewMockShareRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewShareService(ShareServiceParams{
		TxManager:  txManager,
		ShareRepo:  shareRepo,
		DeviceRepo: deviceRepo,
		UserRepo:   userRepo,
		Logger:     newDiscardLogger(),
	})

	return shareServiceFixtures{
		service:    svc,
		txManager:  txManager,
		shareRepo:  shareRepo,
		deviceRepo: deviceRepo,
		userRepo:   userRepo,
	}
}

func TestShareService_CreateShare_Success(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}
	recipient := &entity.User{ID: uuid.New(), Email: "friend@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockShareRepo := mockRepo.NewMockShareRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShareRepository().Return(mockShareRepo)

			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
			mockUserRepo.EXPECT().FindByEmail(ctx, recipient.Email).Return(recipient, nil)

			mockShareRepo.EXPECT().
				UpsertShare(ctx, mock.AnythingOfType("*entity.DeviceShare")).
				Run(func(ctx context.Context, share *entity.DeviceShare) {
					share.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	share, err := fx.service.CreateShare(ctx, ownerID, &usecase.CreateShareInput{
		DeviceID:        device.ID,
		SharedWithEmail: recipient.Email,
		Permission:      "locate",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionLocate, share.Permission)
	assert.Equal(t, recipient.ID, share.SharedWith)
	assert.Nil(t, share.ExpiresAt)
}

func TestShareService_CreateShare_InvalidPermission(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()

	_, err := fx.service.CreateShare(ctx, uuid.New(), &usecase.CreateShareInput{
		DeviceID:        uuid.New(),
		SharedWithEmail: "friend@example.com",
		Permission:      "admin",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPermissionLevel))
}

func TestShareService_CreateShare_PastExpiryRejected(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	past := time.Now().Add(-time.Hour)

	_, err := fx.service.CreateShare(ctx, uuid.New(), &usecase.CreateShareInput{
		DeviceID:        uuid.New(),
		SharedWithEmail: "friend@example.com",
		Permission:      "view",
		ExpiresAt:       &past,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrShareExpiryInPast))
}

func TestShareService_CreateShare_SelfShareRejected(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.Device{ID: uuid.New(), OwnerID: ownerID}
	owner := &entity.User{ID: ownerID, Email: "me@example.com"}

	wantErr := errors.Wrap(domainerrors.ErrValidationFailed, "cannot share a device with its owner")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockShareRepo := mockRepo.NewMockShareRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShareRepository().Return(mockShareRepo)

			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
			mockUserRepo.EXPECT().FindByEmail(ctx, owner.Email).Return(owner, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		}).
		Return(wantErr)

	_, err := fx.service.CreateShare(ctx, ownerID, &usecase.CreateShareInput{
		DeviceID:        device.ID,
		SharedWithEmail: owner.Email,
		Permission:      "view",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShareService_CreateShare_NonOwnerSeesDeviceNotFound(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), OwnerID: uuid.New()}
	impostor := uuid.New()

	wantErr := errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockShareRepo := mockRepo.NewMockShareRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShareRepository().Return(mockShareRepo)

			mockDeviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

			_ = fn(mockFactory)
		}).
		Return(wantErr)

	_, err := fx.service.CreateShare(ctx, impostor, &usecase.CreateShareInput{
		DeviceID:        device.ID,
		SharedWithEmail: "friend@example.com",
		Permission:      "view",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestShareService_RevokeShare_OwnerOnly(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	share := &entity.DeviceShare{ID: uuid.New(), OwnerID: ownerID, SharedWith: uuid.New()}

	fx.shareRepo.EXPECT().FindShareByID(ctx, share.ID).Return(share, nil)
	fx.shareRepo.EXPECT().DeleteShare(ctx, share.ID).Return(nil)

	err := fx.service.RevokeShare(ctx, ownerID, share.ID)

	assert.NoError(t, err)
}

func TestShareService_RevokeShare_RecipientSeesNotFound(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	share := &entity.DeviceShare{ID: uuid.New(), OwnerID: uuid.New(), SharedWith: recipientID}

	fx.shareRepo.EXPECT().FindShareByID(ctx, share.ID).Return(share, nil)

	// The recipient cannot revoke, and cannot learn the share row's identity.
	err := fx.service.RevokeShare(ctx, recipientID, share.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrShareNotFound))
}

func TestShareService_RevokeShare_LostRaceIsIdempotent(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	share := &entity.DeviceShare{ID: uuid.New(), OwnerID: ownerID}

	fx.shareRepo.EXPECT().FindShareByID(ctx, share.ID).Return(share, nil)
	fx.shareRepo.EXPECT().DeleteShare(ctx, share.ID).Return(repository.ErrShareNotFound)

	err := fx.service.RevokeShare(ctx, ownerID, share.ID)

	assert.NoError(t, err)
}

func TestShareService_ListShares(t *testing.T) {
	fx := createTestShareService(t)

	ctx := context.Background()
	userID := uuid.New()
	granted := []*entity.DeviceShare{{ID: uuid.New(), OwnerID: userID}}
	received := []*entity.DeviceShare{{ID: uuid.New(), SharedWith: userID}}

	fx.shareRepo.EXPECT().FindSharesByOwner(ctx, userID).Return(granted, nil)
	fx.shareRepo.EXPECT().FindSharesWithUser(ctx, userID).Return(received, nil)

	gotGranted, err := fx.service.ListSharesByOwner(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, granted, gotGranted)

	gotReceived, err := fx.service.ListSharesWithMe(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, received, gotReceived)
}
