package impl

import (
	"context"
	"testing"

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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service       usecase.ProfileUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	followingRepo *mockRepo.MockFollowingRepository
	activityRepo  *mockRepo.MockActivityRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	followingRepo := mockRepo.NewMockFollowingRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		FollowingRepo: followingRepo,
		ActivityRepo:  activityRepo,
		Logger:        newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:       service,
		txManager:     txManager,
		userRepo:      userRepo,
		followingRepo: followingRepo,
		activityRepo:  activityRepo,
	}
}

func TestProfileService_ToggleFollow_Follow(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	observerID := uuid.New()
	target := &entity.User{ID: uuid.New(), UserName: "bob"}

	var relation *entity.UserFollowing

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowingRepo := mockRepo.NewMockFollowingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowingRepo().Return(mockFollowingRepo)

		mockUserRepo.EXPECT().FindByUserName(ctx, "bob").Return(target, nil)
		mockFollowingRepo.EXPECT().FindFollowing(ctx, observerID, target.ID).
			Return(nil, repository.ErrFollowingNotFound)
		mockFollowingRepo.EXPECT().CreateFollowing(ctx, mock.AnythingOfType("*entity.UserFollowing")).
			Run(func(ctx context.Context, following *entity.UserFollowing) { relation = following }).
			Return(nil)
	})

	err := fx.service.ToggleFollow(ctx, observerID, "bob")

	require.NoError(t, err)
	require.NotNil(t, relation)
	assert.Equal(t, observerID, relation.ObserverID)
	assert.Equal(t, target.ID, relation.TargetID)
}

func TestProfileService_ToggleFollow_Unfollow(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	observerID := uuid.New()
	target := &entity.User{ID: uuid.New(), UserName: "bob"}
	existing := &entity.UserFollowing{ObserverID: observerID, TargetID: target.ID}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockFollowingRepo := mockRepo.NewMockFollowingRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().FollowingRepo().Return(mockFollowingRepo)

		mockUserRepo.EXPECT().FindByUserName(ctx, "bob").Return(target, nil)
		mockFollowingRepo.EXPECT().FindFollowing(ctx, observerID, target.ID).Return(existing, nil)
		mockFollowingRepo.EXPECT().DeleteFollowing(ctx, observerID, target.ID).Return(nil)
	})

	err := fx.service.ToggleFollow(ctx, observerID, "bob")

	require.NoError(t, err)
}

func TestProfileService_ToggleFollow_SelfRejected(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	observerID := uuid.New()
	self := &entity.User{ID: observerID, UserName: "alice"}

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUserName(ctx, "alice").Return(self, nil)
	})

	err := fx.service.ToggleFollow(ctx, observerID, "alice")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_ToggleFollow_TargetNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	observerID := uuid.New()

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUserName(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.ToggleFollow(ctx, observerID, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_ListFollowers_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), UserName: "bob"}
	followers := []*entity.User{{ID: uuid.New(), UserName: "alice"}}

	fx.userRepo.EXPECT().FindByUserName(ctx, "bob").Return(user, nil)
	fx.followingRepo.EXPECT().ListFollowers(ctx, user.ID).Return(followers, nil)

	got, err := fx.service.ListFollowers(ctx, "bob")

	require.NoError(t, err)
	assert.Equal(t, followers, got)
}

func TestProfileService_ListActivities_HostingFilter(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), UserName: "bob"}
	hosting := []*entity.Activity{{ID: uuid.New(), Title: "Pub quiz"}}

	fx.userRepo.EXPECT().FindByUserName(ctx, "bob").Return(user, nil)
	fx.activityRepo.EXPECT().
		ListByAttendee(ctx, user.ID, repository.ActivityFilterHosting, mock.AnythingOfType("time.Time")).
		Return(hosting, nil)

	got, err := fx.service.ListActivities(ctx, "bob", repository.ActivityFilterHosting)

	require.NoError(t, err)
	assert.Equal(t, hosting, got)
}
