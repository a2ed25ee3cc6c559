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

// photoRepository implements the domain.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

// FindByID retrieves a single photo by its storage key.
func (repo *photoRepository) FindByID(ctx context.Context, id string) (*entity.Photo, error) {
	var photoM model.PhotoModel
	if err := repo.db.WithContext(ctx).
		First(&photoM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPhotoDomain(&photoM), nil
}

// FindByUserID retrieves all photos belonging to a user, oldest first.
func (repo *photoRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []model.PhotoModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for i := range photoModels {
		photos = append(photos, toPhotoDomain(&photoModels[i]))
	}

	return photos, nil
}

// Create persists a new photo record.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo record")
	}

	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// Update modifies an existing photo record.
func (repo *photoRepository) Update(ctx context.Context, photo *entity.Photo) error {
	result := repo.db.WithContext(ctx).Model(&model.PhotoModel{}).
		Where("id = ?", photo.ID).
		Update("is_main", photo.IsMain)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update photo record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// Delete removes a photo record.
func (repo *photoRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhotoModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPhotoDomain converts a GORM PhotoModel to a domain Photo entity.
func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	if data == nil {
		return nil
	}

	return &entity.Photo{
		ID:        data.ID,
		UserID:    data.UserID,
		URL:       data.URL,
		IsMain:    data.IsMain,
		CreatedAt: data.CreatedAt,
	}
}

// fromPhotoDomain converts a domain Photo entity to a GORM PhotoModel.
func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	if data == nil {
		return nil
	}

	return &model.PhotoModel{
		ID:        data.ID,
		UserID:    data.UserID,
		URL:       data.URL,
		IsMain:    data.IsMain,
		CreatedAt: data.CreatedAt,
	}
}
