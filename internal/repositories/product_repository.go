package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fruitbox/internal/models/db_models"
)

type ProductRepository interface {
	GetByID(ctx context.Context, productID string) (*db_models.Product, error)
	ListActive(ctx context.Context) ([]db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, productID string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", productID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
