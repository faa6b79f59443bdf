package services

import (
	"context"

	"fruitbox/internal/models/db_models"
	"fruitbox/internal/models/response_models"
	"fruitbox/internal/repositories"
	"fruitbox/pkg/utils"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	GetProductById(ctx context.Context, productId string) (response_models.ProductResponse, error)
}

func NewCatalogService(productRepo repositories.ProductRepository) CatalogServiceInterface {
	return &CatalogService{
		productRepo: productRepo,
	}
}

type CatalogService struct {
	productRepo repositories.ProductRepository
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := c.productRepo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}
	return out, nil
}

func (c *CatalogService) GetProductById(ctx context.Context, productId string) (response_models.ProductResponse, error) {

	product, err := c.productRepo.GetByID(ctx, productId)
	if err != nil {
		return response_models.ProductResponse{}, utils.ErrDatabaseError
	}

	if product == nil {
		return response_models.ProductResponse{}, utils.ErrProductNotFound
	}

	return toProductResponse(*product), nil
}

func toProductResponse(product db_models.Product) response_models.ProductResponse {
	return response_models.ProductResponse{
		ID:           product.ID.String(),
		Name:         product.Name,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		Price:        product.PriceMinor,
		Currency:     product.Currency,
		DurationDays: product.DurationDays,
		AddOns:       product.AddOns,
	}
}
