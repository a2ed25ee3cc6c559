package impl

import (
	"context"
	"testing"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	mockRepo "gather/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthorizationService(t *testing.T) (*mockRepo.MockAttendeeRepository, *authorizationService) {
	attendeeRepo := mockRepo.NewMockAttendeeRepository(t)
	service := &authorizationService{
		attendeeRepo: attendeeRepo,
		logger:       newDiscardLogger(),
	}

	return attendeeRepo, service
}

func TestAuthorizationService_AuthorizeActivityHost_Host(t *testing.T) {
	attendeeRepo, service := createTestAuthorizationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()

	attendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).
		Return(&entity.ActivityAttendee{UserID: callerID, ActivityID: activityID, IsHost: true}, nil)

	isHost, err := service.AuthorizeActivityHost(ctx, callerID, activityID)

	require.NoError(t, err)
	assert.True(t, isHost)
}

func TestAuthorizationService_AuthorizeActivityHost_AttendeeNotHost(t *testing.T) {
	attendeeRepo, service := createTestAuthorizationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()

	attendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).
		Return(&entity.ActivityAttendee{UserID: callerID, ActivityID: activityID, IsHost: false}, nil)

	isHost, err := service.AuthorizeActivityHost(ctx, callerID, activityID)

	require.NoError(t, err)
	assert.False(t, isHost)
}

func TestAuthorizationService_AuthorizeActivityHost_NotAttending(t *testing.T) {
	attendeeRepo, service := createTestAuthorizationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()

	attendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).
		Return(nil, repository.ErrAttendeeNotFound)

	isHost, err := service.AuthorizeActivityHost(ctx, callerID, activityID)

	require.NoError(t, err)
	assert.False(t, isHost, "a missing membership row is a plain deny, not an error")
}

// A store fault must surface as an error, never as a deny: the caller maps it
// to a 5xx so the client does not mistake an outage for a revoked capability.
func TestAuthorizationService_AuthorizeActivityHost_StoreFault(t *testing.T) {
	attendeeRepo, service := createTestAuthorizationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	activityID := uuid.New()

	attendeeRepo.EXPECT().FindAttendee(ctx, callerID, activityID).
		Return(nil, errors.New("connection reset"))

	isHost, err := service.AuthorizeActivityHost(ctx, callerID, activityID)

	require.Error(t, err)
	assert.False(t, isHost)
	assert.Contains(t, err.Error(), "failed to read attendee for host check")
}
