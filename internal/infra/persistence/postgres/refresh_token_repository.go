package postgres

import (
	"context"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// CreateRefreshToken persists a new refresh token, representing a user session.
func (repo *refreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// 256 bits of entropy colliding means the generator is broken,
			// not that the client misbehaved.
			return domainerrors.NewDatabaseExecuteError(err, "refresh token hash collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByUserAndHash retrieves the token record owned by the given
// user whose stored hash matches. Scoping by owner means a stale cookie from
// one account can never validate against another account's access token.
func (repo *refreshTokenRepository) FindRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).
		First(&tokenM, "user_id = ? AND token_hash = ?", userID, tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// RevokeRefreshToken sets the revocation timestamp on a record that has not
// been revoked yet. The WHERE clause on revoked_at IS NULL is the entire
// concurrency story: of two rotations racing on the same token, the row is
// updated exactly once and the loser sees zero rows affected.
func (repo *refreshTokenRepository) RevokeRefreshToken(ctx context.Context, id uuid.UUID, revokedAt time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", revokedAt)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenAlreadyRevoked
	}

	return nil
}

// FindActiveRefreshTokensByUserID retrieves all active (unrevoked, unexpired)
// token records for a user, newest first.
func (repo *refreshTokenRepository) FindActiveRefreshTokensByUserID(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error) {
	var tokenModels []model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, now).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make([]*entity.RefreshToken, 0, len(tokenModels))
	for i := range tokenModels {
		tokens = append(tokens, toRefreshTokenDomain(&tokenModels[i]))
	}

	return tokens, nil
}

// DeleteInactiveRefreshTokens removes all revoked or expired records for a
// user. Runs in the same transaction as the insert of a replacement token so
// the per-user working set stays bounded without a separate sweep.
func (repo *refreshTokenRepository) DeleteInactiveRefreshTokens(ctx context.Context, userID uuid.UUID, now time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND (revoked_at IS NOT NULL OR expires_at <= ?)", userID, now).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteRefreshTokenByUserAndHash removes the matching record, ending the session on logout.
func (repo *refreshTokenRepository) DeleteRefreshTokenByUserAndHash(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		RevokedAt: data.RevokedAt,
		CreatedAt: data.CreatedAt,
	}
}
