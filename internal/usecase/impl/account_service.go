// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"
	"gather/internal/errors"
	"gather/internal/infra/metrics"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It owns the refresh
// token lifecycle: issue at login and registration, rotate on refresh, revoke
// on logout. All token-set mutations run through a full read-then-atomic-write
// transaction; the store is the only serialization point.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	authMetrics      *metrics.AuthMetrics
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	AuthMetrics      *metrics.AuthMetrics
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		authMetrics:      params.AuthMetrics,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and establishes a session.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.UserName))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var newUser *entity.User
	var refreshValue string
	var refreshExpires time.Time

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByUserName(ctx, input.UserName); !errors.Is(findErr, repository.ErrUserNotFound) {
			if findErr != nil {
				return errors.Wrap(findErr, "failed to check username availability")
			}

			return domainerrors.ErrUsernameTaken.WrapMessage("registration rejected")
		}

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); !errors.Is(findErr, repository.ErrUserNotFound) {
			if findErr != nil {
				return errors.Wrap(findErr, "failed to check email availability")
			}

			return domainerrors.ErrEmailTaken.WrapMessage("registration rejected")
		}

		newUser = &entity.User{
			UserName:    input.UserName,
			DisplayName: input.DisplayName,
			Email:       input.Email,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		if credErr := repoFactory.CredentialRepo().SetPasswordHash(ctx, newUser.ID, passwordHash); credErr != nil {
			return errors.Wrap(credErr, "failed to store password hash during registration")
		}

		var issueErr error
		refreshValue, refreshExpires, issueErr = srv.issueRefreshToken(ctx, repoFactory, newUser.ID)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	accessToken, err := srv.tokenService.CreateAccessToken(newUser.ID, newUser.UserName, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.SessionOutput{
		User:             newUser,
		AccessToken:      accessToken,
		RefreshToken:     refreshValue,
		RefreshExpiresAt: refreshExpires,
	}, nil
}

// Login verifies credentials and establishes a session. A missing account and
// a wrong password produce the same undifferentiated rejection.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, passwordHash, err := srv.loadLoginIdentity(ctx, input.Email)
	if err != nil {
		srv.authMetrics.ObserveLogin(false)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, passwordHash) {
		srv.authMetrics.ObserveLogin(false)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	var refreshValue string
	var refreshExpires time.Time

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var issueErr error
		refreshValue, refreshExpires, issueErr = srv.issueRefreshToken(ctx, repoFactory, user.ID)

		return issueErr
	})
	if err != nil {
		srv.authMetrics.ObserveLogin(false)

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	accessToken, err := srv.tokenService.CreateAccessToken(user.ID, user.UserName, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token")
	}

	srv.authMetrics.ObserveLogin(true)
	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{
		User:             user,
		AccessToken:      accessToken,
		RefreshToken:     refreshValue,
		RefreshExpiresAt: refreshExpires,
	}, nil
}

func (srv *accountService) loadLoginIdentity(ctx context.Context, email string) (*entity.User, string, error) {
	var user *entity.User
	var passwordHash string

	// Load identity and credential from the primary in one short transaction
	// to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		passwordHash, findErr = repoFactory.CredentialRepo().FindPasswordHash(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load credential")
		}

		return nil
	}); err != nil {
		return nil, "", err
	}

	return user, passwordHash, nil
}

// Refresh validates and rotates a refresh token. Each successful call revokes
// the presented token and issues exactly one replacement. Two concurrent calls
// presenting the same value race on the conditional revoke; the loser's
// transaction rolls back, so its replacement token is never persisted.
func (srv *accountService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Attempting refresh token rotation", slog.Any("userID", input.UserID))

	if input.PresentedToken == "" {
		srv.authMetrics.ObserveRefresh(metrics.RefreshResultUnrecognized)

		return nil, usecase.ErrRefreshUnrecognized
	}

	tokenHash := srv.tokenService.HashToken(input.PresentedToken)

	var user *entity.User
	var refreshValue string
	var refreshExpires time.Time

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		now := time.Now()

		oldToken, findErr := refreshRepo.FindRefreshTokenByUserAndHash(ctx, input.UserID, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return usecase.ErrRefreshUnrecognized
			}

			return errors.Wrap(findErr, "failed to look up refresh token")
		}

		if !oldToken.IsActive(now) {
			return usecase.ErrRefreshInactive
		}

		var loadErr error
		user, loadErr = repoFactory.UserRepo().FindByID(ctx, input.UserID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to load user for refresh")
		}

		// Issue the replacement before revoking so the housekeeping prune
		// only removes tokens that were already inactive when this rotation
		// began; the one being consumed stays on record for replay detection.
		var issueErr error
		refreshValue, refreshExpires, issueErr = srv.issueRefreshToken(ctx, repoFactory, input.UserID)
		if issueErr != nil {
			return issueErr
		}

		if revokeErr := refreshRepo.RevokeRefreshToken(ctx, oldToken.ID, now); revokeErr != nil {
			if errors.Is(revokeErr, repository.ErrRefreshTokenAlreadyRevoked) {
				// Lost a concurrent rotation race; the transaction rolls
				// back and the replacement above is discarded.
				return usecase.ErrRefreshInactive
			}

			return errors.Wrap(revokeErr, "failed to revoke refresh token")
		}

		return nil
	})
	if err != nil {
		srv.observeRefreshFailure(ctx, input.UserID, err)

		return nil, err
	}

	accessToken, err := srv.tokenService.CreateAccessToken(user.ID, user.UserName, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create access token")
	}

	srv.authMetrics.ObserveRefresh(metrics.RefreshResultSuccess)
	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{
		User:             user,
		AccessToken:      accessToken,
		RefreshToken:     refreshValue,
		RefreshExpiresAt: refreshExpires,
	}, nil
}

func (srv *accountService) observeRefreshFailure(ctx context.Context, userID uuid.UUID, err error) {
	switch {
	case errors.Is(err, usecase.ErrRefreshUnrecognized):
		srv.authMetrics.ObserveRefresh(metrics.RefreshResultUnrecognized)
		srv.log(ctx).Warn("Refresh rejected: token unrecognized", slog.Any("userID", userID))
	case errors.Is(err, usecase.ErrRefreshInactive):
		srv.authMetrics.ObserveRefresh(metrics.RefreshResultInactive)
		// A consumed token presented again: either two concurrent refreshes
		// from the same session or a replayed stolen value.
		srv.log(ctx).Warn("Refresh rejected: token inactive", slog.Any("userID", userID))
	default:
		srv.authMetrics.ObserveRefresh(metrics.RefreshResultError)
		srv.log(ctx).Error("Refresh failed", slog.Any("userID", userID), slog.Any("error", err))
	}
}

// Logout terminates the session matching the presented token. Logging out an
// already-terminated session is a no-op.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting logout", slog.Any("userID", input.UserID))

	tokenHash := srv.tokenService.HashToken(input.PresentedToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByUserAndHash(ctx, input.UserID, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout with unknown token", slog.Any("userID", input.UserID))

			return nil
		}

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// CurrentUser returns the authenticated user's account data.
func (srv *accountService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("current user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// issueRefreshToken generates a new opaque value and attaches its record to
// the user. Records that were inactive before this issuance are deleted in
// the same transaction, keeping the per-user working set bounded without a
// separate sweep and without a lost-update window.
func (srv *accountService) issueRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (string, time.Time, error) {
	refreshRepo := repoFactory.RefreshTokenRepo()
	now := time.Now()

	if err := refreshRepo.DeleteInactiveRefreshTokens(ctx, userID, now); err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to prune inactive refresh tokens")
	}

	value, err := srv.tokenService.GenerateRefreshTokenValue()
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to generate refresh token value")
	}

	expiresAt := now.Add(srv.tokenService.RefreshTokenDuration())
	record := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(value),
		ExpiresAt: expiresAt,
	}

	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to store refresh token")
	}

	return value, expiresAt, nil
}
