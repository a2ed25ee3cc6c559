package impl

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	mockRepo "gather/internal/mocks/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activityServiceFixtures holds all test dependencies for activity service tests.
type activityServiceFixtures struct {
	service      usecase.ActivityUsecase
	txManager    *mockRepo.MockTransactionManager
	activityRepo *mockRepo.MockActivityRepository
}

func createTestActivityService(t *testing.T) activityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewActivityService(ActivityServiceParams{
		TxManager:    txManager,
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	})

	return activityServiceFixtures{
		service:      service,
		txManager:    txManager,
		activityRepo: activityRepo,
	}
}

func TestActivityService_CreateActivity_CreatorBecomesHost(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	activityID := uuid.New()

	var host *entity.ActivityAttendee

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		mockAttendeeRepo := mockRepo.NewMockAttendeeRepository(t)

		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		factory.EXPECT().AttendeeRepo().Return(mockAttendeeRepo)

		mockActivityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).
			Run(func(ctx context.Context, activity *entity.Activity) { activity.ID = activityID }).
			Return(nil)
		mockAttendeeRepo.EXPECT().CreateAttendee(ctx, mock.AnythingOfType("*entity.ActivityAttendee")).
			Run(func(ctx context.Context, attendee *entity.ActivityAttendee) { host = attendee }).
			Return(nil)
	})

	activity, err := fx.service.CreateActivity(ctx, creatorID, &usecase.CreateActivityInput{
		Title:       "Pub quiz",
		Date:        time.Now().Add(48 * time.Hour),
		Description: "Weekly quiz night",
		Category:    "drinks",
		City:        "Berlin",
		Venue:       "The Anchor",
	})

	require.NoError(t, err)
	assert.Equal(t, activityID, activity.ID)

	require.NotNil(t, host)
	assert.Equal(t, creatorID, host.UserID)
	assert.Equal(t, activityID, host.ActivityID)
	assert.True(t, host.IsHost, "creator must be registered as host in the same transaction")
}

func TestActivityService_GetActivity_NotFound(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()

	fx.activityRepo.EXPECT().FindByID(ctx, activityID).Return(nil, repository.ErrActivityNotFound)

	activity, err := fx.service.GetActivity(ctx, activityID)

	assert.Nil(t, activity)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestActivityService_UpdateActivity_Success(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()
	stored := &entity.Activity{ID: activityID, Title: "Old title", City: "Berlin"}
	newDate := time.Now().Add(72 * time.Hour)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)

		mockActivityRepo.EXPECT().FindByID(ctx, activityID).Return(stored, nil)
		mockActivityRepo.EXPECT().Update(ctx, stored).Return(nil)
	})

	activity, err := fx.service.UpdateActivity(ctx, activityID, &usecase.UpdateActivityInput{
		Title:       "New title",
		Date:        newDate,
		Description: "Updated",
		Category:    "culture",
		City:        "Hamburg",
		Venue:       "Kunsthalle",
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", activity.Title)
	assert.Equal(t, "Hamburg", activity.City)
	assert.Equal(t, newDate, activity.Date)
}

func TestActivityService_ToggleAttendance_Join(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()
	activity := &entity.Activity{ID: activityID}

	var joined *entity.ActivityAttendee

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		mockAttendeeRepo := mockRepo.NewMockAttendeeRepository(t)

		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		factory.EXPECT().AttendeeRepo().Return(mockAttendeeRepo)

		mockActivityRepo.EXPECT().FindByID(ctx, activityID).Return(activity, nil)
		mockAttendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).Return(nil, repository.ErrAttendeeNotFound)
		mockAttendeeRepo.EXPECT().CreateAttendee(ctx, mock.AnythingOfType("*entity.ActivityAttendee")).
			Run(func(ctx context.Context, attendee *entity.ActivityAttendee) { joined = attendee }).
			Return(nil)
	})

	err := fx.service.ToggleAttendance(ctx, callerID, activityID)

	require.NoError(t, err)
	require.NotNil(t, joined)
	assert.Equal(t, callerID, joined.UserID)
	assert.False(t, joined.IsHost)
}

func TestActivityService_ToggleAttendance_Leave(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()
	activity := &entity.Activity{ID: activityID}
	attendee := &entity.ActivityAttendee{UserID: callerID, ActivityID: activityID, IsHost: false}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		mockAttendeeRepo := mockRepo.NewMockAttendeeRepository(t)

		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		factory.EXPECT().AttendeeRepo().Return(mockAttendeeRepo)

		mockActivityRepo.EXPECT().FindByID(ctx, activityID).Return(activity, nil)
		mockAttendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).Return(attendee, nil)
		mockAttendeeRepo.EXPECT().DeleteAttendee(ctx, callerID, activityID).Return(nil)
	})

	err := fx.service.ToggleAttendance(ctx, callerID, activityID)

	require.NoError(t, err)
}

// The host never leaves their own activity: toggling flips cancellation.
func TestActivityService_ToggleAttendance_HostTogglesCancellation(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	hostID := uuid.New()
	activityID := uuid.New()
	activity := &entity.Activity{ID: activityID, IsCancelled: false}
	attendee := &entity.ActivityAttendee{UserID: hostID, ActivityID: activityID, IsHost: true}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockActivityRepo := mockRepo.NewMockActivityRepository(t)
		mockAttendeeRepo := mockRepo.NewMockAttendeeRepository(t)

		factory.EXPECT().ActivityRepo().Return(mockActivityRepo)
		factory.EXPECT().AttendeeRepo().Return(mockAttendeeRepo)

		mockActivityRepo.EXPECT().FindByID(ctx, activityID).Return(activity, nil)
		mockAttendeeRepo.EXPECT().FindAttendee(ctx, hostID, activityID).Return(attendee, nil)
		mockActivityRepo.EXPECT().Update(ctx, activity).Return(nil)
	})

	err := fx.service.ToggleAttendance(ctx, hostID, activityID)

	require.NoError(t, err)
	assert.True(t, activity.IsCancelled)
}

func TestActivityService_DeleteActivity_NotFound(t *testing.T) {
	fx := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()

	fx.activityRepo.EXPECT().Delete(ctx, activityID).Return(repository.ErrActivityNotFound)

	err := fx.service.DeleteActivity(ctx, activityID)

	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}
