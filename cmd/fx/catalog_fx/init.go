package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/repositories"
	"fruitbox/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideProductRepo)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCatalogService(productRepo repositories.ProductRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo)
}
