package repository

import (
	"context"

	"gorm.io/gorm"

	"fleetrent/internal/model"
)

// RequestLogRepository defines audit log persistence operations.
type RequestLogRepository interface {
	Create(ctx context.Context, entry *model.RequestLog) error
	CreateBatch(ctx context.Context, entries []model.RequestLog) error
}

type requestLogRepository struct {
	db *gorm.DB
}

// NewRequestLogRepository creates a new request log repository.
func NewRequestLogRepository(db *gorm.DB) RequestLogRepository {
	return &requestLogRepository{db: db}
}

func (r *requestLogRepository) Create(ctx context.Context, entry *model.RequestLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateBatch inserts multiple audit rows at once.
func (r *requestLogRepository) CreateBatch(ctx context.Context, entries []model.RequestLog) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}
