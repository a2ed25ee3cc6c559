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

// activityRepository implements the domain.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// FindByID retrieves a single activity with its attendees preloaded.
func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.db.WithContext(ctx).
		Preload("Attendees").
		First(&activityM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toActivityDomain(&activityM), nil
}

// List retrieves activities ordered by date.
func (repo *activityRepository) List(ctx context.Context) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	if err := repo.db.WithContext(ctx).
		Preload("Attendees").
		Order("date ASC").
		Find(&activityModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, toActivityDomain(&activityModels[i]))
	}

	return activities, nil
}

// ListByAttendee retrieves the activities a user attends, narrowed by the
// filter relative to the reference time.
func (repo *activityRepository) ListByAttendee(ctx context.Context, userID uuid.UUID, filter repository.ActivityFilter, ref time.Time) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).
		Preload("Attendees").
		Joins("JOIN activity_attendees ON activity_attendees.activity_id = activities.id").
		Where("activity_attendees.user_id = ?", userID)

	switch filter {
	case repository.ActivityFilterPast:
		query = query.Where("activities.date < ?", ref).Order("date DESC")
	case repository.ActivityFilterFuture:
		query = query.Where("activities.date >= ?", ref).Order("date ASC")
	case repository.ActivityFilterHosting:
		query = query.Where("activity_attendees.is_host = TRUE").Order("date ASC")
	case repository.ActivityFilterAll:
		query = query.Order("date ASC")
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown activity filter").
			WrapMessage("activity listing rejected")
	}

	var activityModels []model.ActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for i := range activityModels {
		activities = append(activities, toActivityDomain(&activityModels[i]))
	}

	return activities, nil
}

// Create persists a new activity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// Update modifies an existing activity.
func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).Model(&model.ActivityModel{}).
		Where("id = ?", activityM.ID).
		Updates(map[string]any{
			"title":        activityM.Title,
			"date":         activityM.Date,
			"description":  activityM.Description,
			"category":     activityM.Category,
			"city":         activityM.City,
			"venue":        activityM.Venue,
			"is_cancelled": activityM.IsCancelled,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// Delete removes an activity and its membership rows.
func (repo *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("activity_id = ?", id).
		Delete(&model.AttendeeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ActivityModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	attendees := make([]entity.ActivityAttendee, 0, len(data.Attendees))
	for i := range data.Attendees {
		attendees = append(attendees, *toAttendeeDomain(&data.Attendees[i]))
	}

	return &entity.Activity{
		ID:          data.ID,
		Title:       data.Title,
		Date:        data.Date,
		Description: data.Description,
		Category:    data.Category,
		City:        data.City,
		Venue:       data.Venue,
		IsCancelled: data.IsCancelled,
		Attendees:   attendees,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:          data.ID,
		Title:       data.Title,
		Date:        data.Date,
		Description: data.Description,
		Category:    data.Category,
		City:        data.City,
		Venue:       data.Venue,
		IsCancelled: data.IsCancelled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
