package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fruitbox/internal/infra"
	"fruitbox/internal/models/db_models"
)

type SubscriptionRepository interface {
	Insert(ctx context.Context, sub *db_models.Subscription) error
	GetByID(ctx context.Context, subscriptionID uuid.UUID) (*db_models.Subscription, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error)
	List(ctx context.Context, status *db_models.SubscriptionStatus) ([]db_models.Subscription, error)
	ListActive(ctx context.Context) ([]db_models.Subscription, error)
	ListActiveEndedBefore(ctx context.Context, day time.Time) ([]db_models.Subscription, error)
	SetStatus(ctx context.Context, subscriptionID uuid.UUID, status db_models.SubscriptionStatus, paymentStatus *db_models.PaymentStatus) error
	// ExtendForPause applies the pause bookkeeping with a compare-and-swap on
	// (end_date, paused_days). Returns false when another writer got there first.
	ExtendForPause(ctx context.Context, subscriptionID uuid.UUID,
		oldEndDate time.Time, oldPausedDays int,
		newEndDate time.Time, newPausedDays int, pausedDeliveries datatypes.JSON) (bool, error)
	// ExtendForLeave pushes the end date out by one day and stamps the admin message.
	ExtendForLeave(ctx context.Context, subscriptionID uuid.UUID, newEndDate time.Time, adminMessage string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// conn joins an in-flight transaction when the context carries one.
func (r *subscriptionRepository) conn(ctx context.Context) *gorm.DB {
	return infra.DBFromContext(ctx, r.db).WithContext(ctx)
}

func (r *subscriptionRepository) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return r.conn(ctx).Create(sub).Error
}

func (r *subscriptionRepository) GetByID(ctx context.Context, subscriptionID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.conn(ctx).First(&sub, "id = ?", subscriptionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.conn(ctx).
		Where("account_id = ?", accountID).
		Preload("Product").
		Order("created_at DESC").
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepository) List(ctx context.Context, status *db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	q := r.conn(ctx).Preload("Product").Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var subs []db_models.Subscription
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepository) ListActive(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.conn(ctx).
		Where("status = ?", db_models.SubStatusActive).
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepository) ListActiveEndedBefore(ctx context.Context, day time.Time) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.conn(ctx).
		Where("status = ? AND end_date < ?", db_models.SubStatusActive, day).
		Find(&subs).Error

	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *subscriptionRepository) SetStatus(ctx context.Context, subscriptionID uuid.UUID, status db_models.SubscriptionStatus, paymentStatus *db_models.PaymentStatus) error {
	updates := map[string]interface{}{"status": status}
	if paymentStatus != nil {
		updates["payment_status"] = *paymentStatus
	}

	return r.conn(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ?", subscriptionID).
		Updates(updates).Error
}

func (r *subscriptionRepository) ExtendForPause(ctx context.Context, subscriptionID uuid.UUID,
	oldEndDate time.Time, oldPausedDays int,
	newEndDate time.Time, newPausedDays int, pausedDeliveries datatypes.JSON) (bool, error) {

	res := r.conn(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ? AND end_date = ? AND paused_days = ?", subscriptionID, oldEndDate, oldPausedDays).
		Updates(map[string]interface{}{
			"end_date":          newEndDate,
			"paused_days":       newPausedDays,
			"paused_deliveries": pausedDeliveries,
		})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *subscriptionRepository) ExtendForLeave(ctx context.Context, subscriptionID uuid.UUID, newEndDate time.Time, adminMessage string) error {
	return r.conn(ctx).
		Model(&db_models.Subscription{}).
		Where("id = ?", subscriptionID).
		Updates(map[string]interface{}{
			"end_date":      newEndDate,
			"admin_message": adminMessage,
		}).Error
}
