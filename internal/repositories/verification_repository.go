package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fruitbox/internal/models/db_models"
)

type VerificationRepository interface {
	Insert(ctx context.Context, record *db_models.VerifyDelivery) error
	GetByID(ctx context.Context, verificationID uuid.UUID) (*db_models.VerifyDelivery, error)
	HasPending(ctx context.Context, accountID uuid.UUID) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.VerifyDelivery, error)
	ListPending(ctx context.Context) ([]db_models.VerifyDelivery, error)
	Decide(ctx context.Context, verificationID uuid.UUID, status db_models.VerifyDeliveryStatus, deliveryCharge int64) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Insert(ctx context.Context, record *db_models.VerifyDelivery) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *verificationRepository) GetByID(ctx context.Context, verificationID uuid.UUID) (*db_models.VerifyDelivery, error) {
	var record db_models.VerifyDelivery
	err := r.db.WithContext(ctx).First(&record, "id = ?", verificationID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *verificationRepository) HasPending(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.VerifyDelivery{}).
		Where("account_id = ? AND status = ?", accountID, db_models.VerifyPending).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *verificationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.VerifyDelivery, error) {
	var records []db_models.VerifyDelivery
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *verificationRepository) ListPending(ctx context.Context) ([]db_models.VerifyDelivery, error) {
	var records []db_models.VerifyDelivery
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.VerifyPending).
		Preload("Account").
		Order("created_at ASC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *verificationRepository) Decide(ctx context.Context, verificationID uuid.UUID, status db_models.VerifyDeliveryStatus, deliveryCharge int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.VerifyDelivery{}).
		Where("id = ?", verificationID).
		Updates(map[string]interface{}{
			"status":          status,
			"delivery_charge": deliveryCharge,
		}).Error
}
