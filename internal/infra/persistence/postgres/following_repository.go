package postgres

import (
	"context"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// followingRepository implements the domain.FollowingRepository interface.
type followingRepository struct {
	db *gorm.DB
}

// NewFollowingRepository is the constructor for followingRepository.
func NewFollowingRepository(db *gorm.DB) repository.FollowingRepository {
	return &followingRepository{db: db}
}

// FindFollowing retrieves the relation for the composite key (observer, target).
func (repo *followingRepository) FindFollowing(ctx context.Context, observerID, targetID uuid.UUID) (*entity.UserFollowing, error) {
	var followingM model.FollowingModel
	if err := repo.db.WithContext(ctx).
		First(&followingM, "observer_id = ? AND target_id = ?", observerID, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFollowingNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.UserFollowing{
		ObserverID: followingM.ObserverID,
		TargetID:   followingM.TargetID,
		CreatedAt:  followingM.CreatedAt,
	}, nil
}

// CreateFollowing inserts a relation.
func (repo *followingRepository) CreateFollowing(ctx context.Context, following *entity.UserFollowing) error {
	followingM := &model.FollowingModel{
		ObserverID: following.ObserverID,
		TargetID:   following.TargetID,
	}

	if err := repo.db.WithContext(ctx).Create(followingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already following")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create following relation")
	}

	following.CreatedAt = followingM.CreatedAt

	return nil
}

// DeleteFollowing removes a relation.
func (repo *followingRepository) DeleteFollowing(ctx context.Context, observerID, targetID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("observer_id = ? AND target_id = ?", observerID, targetID).
		Delete(&model.FollowingModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowingNotFound
	}

	return nil
}

// ListFollowers retrieves the users following the given user.
func (repo *followingRepository) ListFollowers(ctx context.Context, targetID uuid.UUID) ([]*entity.User, error) {
	return repo.listRelatedUsers(ctx,
		"JOIN user_followings ON user_followings.observer_id = users.id",
		"user_followings.target_id = ?", targetID)
}

// ListFollowing retrieves the users the given user follows.
func (repo *followingRepository) ListFollowing(ctx context.Context, observerID uuid.UUID) ([]*entity.User, error) {
	return repo.listRelatedUsers(ctx,
		"JOIN user_followings ON user_followings.target_id = users.id",
		"user_followings.observer_id = ?", observerID)
}

func (repo *followingRepository) listRelatedUsers(ctx context.Context, join, where string, id uuid.UUID) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Photos").
		Joins(join).
		Where(where, id).
		Order("users.user_name ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}
