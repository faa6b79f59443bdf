package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fruitbox/internal/models/db_models"
)

type DeliveryBoyRepository interface {
	Insert(ctx context.Context, boy *db_models.DeliveryBoy) error
	FindByPhone(ctx context.Context, phone string) (*db_models.DeliveryBoy, error)
	FindById(ctx context.Context, id string) (*db_models.DeliveryBoy, error)
	Save(ctx context.Context, boy *db_models.DeliveryBoy) error
}

type deliveryBoyRepository struct {
	db *gorm.DB
}

func NewDeliveryBoyRepository(db *gorm.DB) DeliveryBoyRepository {
	return &deliveryBoyRepository{db: db}
}

func (r *deliveryBoyRepository) Insert(ctx context.Context, boy *db_models.DeliveryBoy) error {
	return r.db.WithContext(ctx).Create(boy).Error
}

func (r *deliveryBoyRepository) FindByPhone(ctx context.Context, phone string) (*db_models.DeliveryBoy, error) {
	var boy db_models.DeliveryBoy
	err := r.db.WithContext(ctx).First(&boy, "phone = ?", phone).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &boy, nil
}

func (r *deliveryBoyRepository) FindById(ctx context.Context, id string) (*db_models.DeliveryBoy, error) {
	var boy db_models.DeliveryBoy
	err := r.db.WithContext(ctx).First(&boy, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &boy, nil
}

func (r *deliveryBoyRepository) Save(ctx context.Context, boy *db_models.DeliveryBoy) error {
	return r.db.WithContext(ctx).Save(boy).Error
}
