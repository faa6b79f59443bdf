package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fruitbox/internal/infra"
	"fruitbox/internal/models/db_models"
)

type DeliveryRepository interface {
	Insert(ctx context.Context, delivery *db_models.Delivery) error
	GetByID(ctx context.Context, deliveryID uuid.UUID) (*db_models.Delivery, error)
	// ExistsOn reports whether the subscription already has a delivery on the
	// given day, regardless of status.
	ExistsOn(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error)
	ListPendingInRange(ctx context.Context, subscriptionID uuid.UUID, from, to time.Time) ([]db_models.Delivery, error)
	MarkStatus(ctx context.Context, deliveryID uuid.UUID, status db_models.DeliveryStatus, deliveredAt *int64) error
	// CancelAllOn cancels every pending delivery on a day system-wide and
	// returns how many rows were touched.
	CancelAllOn(ctx context.Context, day time.Time) (int64, error)
	CancelPendingForSubscription(ctx context.Context, subscriptionID uuid.UUID) error
	// DeleteAfter hard-deletes rows dated strictly after day.
	DeleteAfter(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (int64, error)
	CountUndeliveredFrom(ctx context.Context, subscriptionID uuid.UUID, from time.Time) (int64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Delivery, error)
	ListPendingOnDayInAreas(ctx context.Context, day time.Time, areas []string) ([]db_models.Delivery, error)
}

type deliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

func (r *deliveryRepository) conn(ctx context.Context) *gorm.DB {
	return infra.DBFromContext(ctx, r.db).WithContext(ctx)
}

// dayBounds returns the [start, next-day) window for a UTC-midnight day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func (r *deliveryRepository) Insert(ctx context.Context, delivery *db_models.Delivery) error {
	return r.conn(ctx).Create(delivery).Error
}

func (r *deliveryRepository) GetByID(ctx context.Context, deliveryID uuid.UUID) (*db_models.Delivery, error) {
	var delivery db_models.Delivery
	err := r.conn(ctx).First(&delivery, "id = ?", deliveryID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &delivery, nil
}

func (r *deliveryRepository) ExistsOn(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (bool, error) {
	from, to := dayBounds(day)

	var count int64
	err := r.conn(ctx).
		Model(&db_models.Delivery{}).
		Where("subscription_id = ? AND delivery_date >= ? AND delivery_date < ?", subscriptionID, from, to).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *deliveryRepository) ListPendingInRange(ctx context.Context, subscriptionID uuid.UUID, from, to time.Time) ([]db_models.Delivery, error) {
	_, toExclusive := dayBounds(to)

	var deliveries []db_models.Delivery
	err := r.conn(ctx).
		Where("subscription_id = ? AND status = ? AND delivery_date >= ? AND delivery_date < ?",
			subscriptionID, db_models.DeliveryPending, from, toExclusive).
		Order("delivery_date ASC").
		Find(&deliveries).Error

	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (r *deliveryRepository) MarkStatus(ctx context.Context, deliveryID uuid.UUID, status db_models.DeliveryStatus, deliveredAt *int64) error {
	updates := map[string]interface{}{"status": status}
	if deliveredAt != nil {
		updates["delivered_at"] = *deliveredAt
	}

	return r.conn(ctx).
		Model(&db_models.Delivery{}).
		Where("id = ?", deliveryID).
		Updates(updates).Error
}

func (r *deliveryRepository) CancelAllOn(ctx context.Context, day time.Time) (int64, error) {
	from, to := dayBounds(day)

	res := r.conn(ctx).
		Model(&db_models.Delivery{}).
		Where("delivery_date >= ? AND delivery_date < ? AND status = ?", from, to, db_models.DeliveryPending).
		Update("status", db_models.DeliveryCancelled)

	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

func (r *deliveryRepository) CancelPendingForSubscription(ctx context.Context, subscriptionID uuid.UUID) error {
	return r.conn(ctx).
		Model(&db_models.Delivery{}).
		Where("subscription_id = ? AND status = ?", subscriptionID, db_models.DeliveryPending).
		Update("status", db_models.DeliveryCancelled).Error
}

func (r *deliveryRepository) DeleteAfter(ctx context.Context, subscriptionID uuid.UUID, day time.Time) (int64, error) {
	_, after := dayBounds(day)

	res := r.conn(ctx).
		Where("subscription_id = ? AND delivery_date >= ?", subscriptionID, after).
		Delete(&db_models.Delivery{})

	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

func (r *deliveryRepository) CountUndeliveredFrom(ctx context.Context, subscriptionID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&db_models.Delivery{}).
		Where("subscription_id = ? AND delivery_date >= ? AND status NOT IN ?",
			subscriptionID, from,
			[]db_models.DeliveryStatus{db_models.DeliveryDelivered, db_models.DeliveryCancelled}).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *deliveryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Delivery, error) {
	var deliveries []db_models.Delivery
	err := r.conn(ctx).
		Where("account_id = ?", accountID).
		Order("delivery_date DESC").
		Find(&deliveries).Error

	if err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (r *deliveryRepository) ListPendingOnDayInAreas(ctx context.Context, day time.Time, areas []string) ([]db_models.Delivery, error) {
	from, to := dayBounds(day)

	var deliveries []db_models.Delivery
	err := r.conn(ctx).
		Where("status = ? AND delivery_date >= ? AND delivery_date < ? AND address_area IN ?",
			db_models.DeliveryPending, from, to, areas).
		Order("address_area ASC, slot ASC").
		Find(&deliveries).Error

	if err != nil {
		return nil, err
	}

	return deliveries, nil
}
