package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/crmaster/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	Query(ctx context.Context, params ActivityQueryParams) ([]model.ActivityLog, int64, error)
}

// ActivityLogRepository handles database operations for activity logs
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create inserts a new activity log entry
func (r *ActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// ActivityQueryParams holds filters for querying activity logs. The
// organisation filter is always applied.
type ActivityQueryParams struct {
	OrganisationID uuid.UUID
	Action         string
	EntityType     string
	EntityID       string
	StartTime      time.Time
	EndTime        time.Time
	Limit          int
	Offset         int
}

// Query retrieves activity logs of one organisation, newest first
func (r *ActivityLogRepository) Query(ctx context.Context, params ActivityQueryParams) ([]model.ActivityLog, int64, error) {
	var logs []model.ActivityLog
	var count int64

	query := r.db.WithContext(ctx).
		Model(&model.ActivityLog{}).
		Where("organisation_id = ?", params.OrganisationID)

	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	if params.EntityID != "" {
		query = query.Where("entity_id = ?", params.EntityID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("created_at >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("created_at <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(50)
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query activity logs: %w", err)
	}

	return logs, count, nil
}
