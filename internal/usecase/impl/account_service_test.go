package impl

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/metrics"
	mockRepo "gather/internal/mocks/repository"
	mockSvc "gather/internal/mocks/service"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		AuthMetrics:      metrics.NewAuthMetrics(),
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		refreshRepo:  refreshRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("s3cretpass").Return("bcrypt-hash", nil)
	fx.tokenService.EXPECT().GenerateRefreshTokenValue().Return("opaque-refresh-value", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().HashToken("opaque-refresh-value").Return("refresh-hash")
	fx.tokenService.EXPECT().CreateAccessToken(userID, "newuser", "new@example.com").Return("access-token", nil)

	var storedToken *entity.RefreshToken

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockCredRepo := mockRepo.NewMockCredentialRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().CredentialRepo().Return(mockCredRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockUserRepo.EXPECT().FindByUserName(ctx, "newuser").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) { user.ID = userID }).
			Return(nil)
		mockCredRepo.EXPECT().SetPasswordHash(ctx, userID, "bcrypt-hash").Return(nil)
		mockRefreshRepo.EXPECT().DeleteInactiveRefreshTokens(ctx, userID, mock.AnythingOfType("time.Time")).Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(ctx context.Context, token *entity.RefreshToken) { storedToken = token }).
			Return(nil)
	})

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		UserName:    "newuser",
		DisplayName: "New User",
		Email:       "new@example.com",
		Password:    "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "opaque-refresh-value", out.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), out.RefreshExpiresAt, time.Minute)

	require.NotNil(t, storedToken)
	assert.Equal(t, userID, storedToken.UserID)
	assert.Equal(t, "refresh-hash", storedToken.TokenHash, "only the hash may be persisted")
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
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

	fx.hasher.EXPECT().Check("correct-password", "bcrypt-hash").Return(true)

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().DeleteInactiveRefreshTokens(ctx, userID, mock.AnythingOfType("time.Time")).Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	fx.tokenService.EXPECT().GenerateRefreshTokenValue().Return("opaque-refresh-value", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().HashToken("opaque-refresh-value").Return("refresh-hash")
	fx.tokenService.EXPECT().CreateAccessToken(userID, "alice", "alice@example.com").Return("access-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.Equal(t, user, out.User)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "opaque-refresh-value", out.RefreshToken)
}

func TestAccountService_Refresh_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()
	user := &entity.User{ID: userID, UserName: "alice", Email: "alice@example.com"}
	oldToken := &entity.RefreshToken{
		ID:        tokenID,
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().HashToken("old-refresh-value").Return("old-hash")
	fx.tokenService.EXPECT().GenerateRefreshTokenValue().Return("new-refresh-value", nil)
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().HashToken("new-refresh-value").Return("new-hash")
	fx.tokenService.EXPECT().CreateAccessToken(userID, "alice", "alice@example.com").Return("access-token", nil)

	var callOrder []string

	onExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().FindRefreshTokenByUserAndHash(ctx, userID, "old-hash").Return(oldToken, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().DeleteInactiveRefreshTokens(ctx, userID, mock.AnythingOfType("time.Time")).
			Run(func(ctx context.Context, userID uuid.UUID, now time.Time) { callOrder = append(callOrder, "prune") }).
			Return(nil)
		mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(ctx context.Context, token *entity.RefreshToken) { callOrder = append(callOrder, "create") }).
			Return(nil)
		mockRefreshRepo.EXPECT().RevokeRefreshToken(ctx, tokenID, mock.AnythingOfType("time.Time")).
			Run(func(ctx context.Context, id uuid.UUID, revokedAt time.Time) { callOrder = append(callOrder, "revoke") }).
			Return(nil)
	})

	out, err := fx.service.Refresh(ctx, &usecase.RefreshInput{
		UserID:         userID,
		PresentedToken: "old-refresh-value",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "new-refresh-value", out.RefreshToken)

	// The replacement must exist before the presented token is consumed, and
	// the conditional revoke must come last so concurrent rotations race on it.
	assert.Equal(t, []string{"prune", "create", "revoke"}, callOrder)
}

func TestAccountService_Logout_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("refresh-value").Return("refresh-hash")
	fx.refreshRepo.EXPECT().DeleteRefreshTokenByUserAndHash(ctx, userID, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{UserID: userID, PresentedToken: "refresh-value"})

	require.NoError(t, err)
}

func TestAccountService_Logout_UnknownTokenIsNoop(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("stale-value").Return("stale-hash")
	fx.refreshRepo.EXPECT().DeleteRefreshTokenByUserAndHash(ctx, userID, "stale-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{UserID: userID, PresentedToken: "stale-value"})

	require.NoError(t, err)
}

func TestAccountService_CurrentUser_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, UserName: "alice"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}
