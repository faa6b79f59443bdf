package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fruitbox/internal/infra"
	"fruitbox/internal/models/db_models"
)

type CancellationRepository interface {
	Insert(ctx context.Context, record *db_models.AdminCancellationMessage) error
	ExistsForDate(ctx context.Context, day time.Time) (bool, error)
}

type cancellationRepository struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) CancellationRepository {
	return &cancellationRepository{db: db}
}

func (r *cancellationRepository) conn(ctx context.Context) *gorm.DB {
	return infra.DBFromContext(ctx, r.db).WithContext(ctx)
}

func (r *cancellationRepository) Insert(ctx context.Context, record *db_models.AdminCancellationMessage) error {
	return r.conn(ctx).Create(record).Error
}

func (r *cancellationRepository) ExistsForDate(ctx context.Context, day time.Time) (bool, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	var count int64
	err := r.conn(ctx).
		Model(&db_models.AdminCancellationMessage{}).
		Where("cancellation_date >= ? AND cancellation_date < ?", from, to).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
