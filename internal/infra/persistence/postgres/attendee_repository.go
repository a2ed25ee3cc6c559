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

// attendeeRepository implements the domain.AttendeeRepository interface.
type attendeeRepository struct {
	db *gorm.DB
}

// NewAttendeeRepository is the constructor for attendeeRepository.
func NewAttendeeRepository(db *gorm.DB) repository.AttendeeRepository {
	return &attendeeRepository{db: db}
}

// FindAttendee retrieves the membership row for the composite key (user, activity).
func (repo *attendeeRepository) FindAttendee(ctx context.Context, userID, activityID uuid.UUID) (*entity.ActivityAttendee, error) {
	var attendeeM model.AttendeeModel
	if err := repo.db.WithContext(ctx).
		First(&attendeeM, "user_id = ? AND activity_id = ?", userID, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendeeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAttendeeDomain(&attendeeM), nil
}

// CreateAttendee inserts a membership row.
func (repo *attendeeRepository) CreateAttendee(ctx context.Context, attendee *entity.ActivityAttendee) error {
	attendeeM := fromAttendeeDomain(attendee)

	if err := repo.db.WithContext(ctx).Create(attendeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already attending")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attendee")
	}

	attendee.CreatedAt = attendeeM.CreatedAt

	return nil
}

// DeleteAttendee removes a membership row.
func (repo *attendeeRepository) DeleteAttendee(ctx context.Context, userID, activityID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Delete(&model.AttendeeModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttendeeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAttendeeDomain converts a GORM AttendeeModel to a domain ActivityAttendee entity.
func toAttendeeDomain(data *model.AttendeeModel) *entity.ActivityAttendee {
	if data == nil {
		return nil
	}

	return &entity.ActivityAttendee{
		UserID:     data.UserID,
		ActivityID: data.ActivityID,
		IsHost:     data.IsHost,
		CreatedAt:  data.CreatedAt,
	}
}

// fromAttendeeDomain converts a domain ActivityAttendee entity to a GORM AttendeeModel.
func fromAttendeeDomain(data *entity.ActivityAttendee) *model.AttendeeModel {
	if data == nil {
		return nil
	}

	return &model.AttendeeModel{
		UserID:     data.UserID,
		ActivityID: data.ActivityID,
		IsHost:     data.IsHost,
		CreatedAt:  data.CreatedAt,
	}
}
