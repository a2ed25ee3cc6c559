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

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), UserName: "taken"}

	fx.hasher.EXPECT().Hash("s3cretpass").Return("bcrypt-hash", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUserName(ctx, "taken").Return(existing, nil)
	})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		UserName:    "taken",
		DisplayName: "Taken",
		Email:       "taken@example.com",
		Password:    "s3cretpass",
	})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com"}

	fx.hasher.EXPECT().Hash("s3cretpass").Return("bcrypt-hash", nil)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByUserName(ctx, "newuser").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(existing, nil)
	})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		UserName:    "newuser",
		DisplayName: "New User",
		Email:       "taken@example.com",
		Password:    "s3cretpass",
	})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

// A missing account and a wrong password must be indistinguishable to the
// caller: same sentinel, same message.
func TestAccountService_Login_UniformRejection(t *testing.T) {
	ctx := context.Background()

	unknownEmail := func(t *testing.T) error {
		fx := createTestAccountService(t)

		onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
		})

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		return err
	}

	wrongPassword := func(t *testing.T) error {
		fx := createTestAccountService(t)
		userID := uuid.New()
		user := &entity.User{ID: userID, UserName: "alice", Email: "alice@example.com"}

		onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredRepo := mockRepo.NewMockCredentialRepository(t)
			factory.EXPECT().UserRepo().Return(mockUserRepo)
			factory.EXPECT().CredentialRepo().Return(mockCredRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
			mockCredRepo.EXPECT().FindPasswordHash(ctx, userID).Return("bcrypt-hash", nil)
		})
		fx.hasher.EXPECT().Check("wrong-password", "bcrypt-hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong-password"})

		return err
	}

	errUnknown := unknownEmail(t)
	errWrong := wrongPassword(t)

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, errors.Is(errUnknown, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Refresh_EmptyToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: uuid.New(), PresentedToken: ""})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, usecase.ErrRefreshUnrecognized))
}

func TestAccountService_Refresh_Unrecognized(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("guessed-value").Return("guessed-hash")

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "guessed-hash").
			Return(nil, repository.ErrRefreshTokenNotFound)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "guessed-value"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, usecase.ErrRefreshUnrecognized))
}

func TestAccountService_Refresh_Revoked(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	revokedAt := time.Now().Add(-time.Minute)
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "consumed-hash",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	fx.tokenService.EXPECT().HashToken("consumed-value").Return("consumed-hash")

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "consumed-hash").Return(token, nil)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "consumed-value"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, usecase.ErrRefreshInactive))
}

func TestAccountService_Refresh_Expired(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "expired-hash",
		ExpiresAt: time.Now().Add(-time.Second),
	}

	fx.tokenService.EXPECT().HashToken("expired-value").Return("expired-hash")

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "expired-hash").Return(token, nil)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "expired-value"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, usecase.ErrRefreshInactive))
}

// Losing the conditional revoke race must roll the transaction back and
// surface the same inactive rejection as a replayed token.
func TestAccountService_Refresh_LostRevocationRace(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	user := &entity.User{ID: userID, UserName: "alice", Email: "alice@example.com"}
	token := &entity.RefreshToken{
		ID:        tokenID,
		UserID:    userID,
		TokenHash: "contended-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().HashToken("contended-value").Return("contended-hash")
	fx.tokenService.EXPECT().GenerateRefreshTokenValue().Return("loser-value", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().HashToken("loser-value").Return("loser-hash")

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "contended-hash").Return(token, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().DeleteInactiveRefreshTokens(ctx, userID, mock.AnythingOfType("time.Time")).Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
		mockRefreshRepo.EXPECT().RevokeRefreshToken(ctx, tokenID, mock.AnythingOfType("time.Time")).
			Return(repository.ErrRefreshTokenAlreadyRevoked)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "contended-value"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, usecase.ErrRefreshInactive))
}

func TestAccountService_Refresh_StoreFault(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("refresh-value").Return("refresh-hash")

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "refresh-hash").
			Return(nil, errors.New("connection reset"))
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{UserID: userID, PresentedToken: "refresh-value"})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.False(t, errors.Is(err, usecase.ErrRefreshUnrecognized))
	assert.False(t, errors.Is(err, usecase.ErrRefreshInactive))
	assert.Contains(t, err.Error(), "failed to look up refresh token")
}

func TestAccountService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
