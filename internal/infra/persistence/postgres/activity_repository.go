package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// CreateActivity appends a visitor activity record.
func (repo *activityRepository) CreateActivity(ctx context.Context, event *entity.ActivityEvent) error {
	activityM := fromActivityDomain(event)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record activity")
	}

	event.ID = activityM.ID
	event.CreatedAt = activityM.CreatedAt

	return nil
}

// ListRecentActivities retrieves up to limit records newest-first,
// optionally narrowed to one activity kind.
func (repo *activityRepository) ListRecentActivities(ctx context.Context, kind entity.ActivityKind, limit int) ([]*entity.ActivityEvent, error) {
	var activityModels []*model.UserActivityModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit)
	if kind != "" {
		query = query.Where("activity_type = ?", string(kind))
	}

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	events := make([]*entity.ActivityEvent, 0, len(activityModels))
	for _, activityM := range activityModels {
		events = append(events, toActivityDomain(activityM))
	}

	return events, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM UserActivityModel to a domain ActivityEvent entity.
func toActivityDomain(data *model.UserActivityModel) *entity.ActivityEvent {
	if data == nil {
		return nil
	}

	return &entity.ActivityEvent{
		ID:          data.ID,
		SessionID:   data.SessionID,
		Kind:        entity.ActivityKind(data.Kind),
		PagePath:    data.PagePath,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Metadata:    map[string]any(data.Metadata),
		UserAgent:   data.UserAgent,
		IPAddress:   data.IPAddress,
		CreatedAt:   data.CreatedAt,
	}
}

// fromActivityDomain converts a domain ActivityEvent entity to a GORM UserActivityModel.
func fromActivityDomain(data *entity.ActivityEvent) *model.UserActivityModel {
	if data == nil {
		return nil
	}

	return &model.UserActivityModel{
		ID:          data.ID,
		SessionID:   data.SessionID,
		Kind:        string(data.Kind),
		PagePath:    data.PagePath,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Metadata:    datatypes.JSONMap(data.Metadata),
		UserAgent:   data.UserAgent,
		IPAddress:   data.IPAddress,
		CreatedAt:   data.CreatedAt,
	}
}
