package deliveryboy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/repositories"
	"fruitbox/internal/services"
)

var Module = fx.Provide(
	provideDeliveryBoyService, provideDeliveryBoyRepo)

func provideDeliveryBoyRepo(db *gorm.DB) repositories.DeliveryBoyRepository {
	return repositories.NewDeliveryBoyRepository(db)
}

func provideDeliveryBoyService(
	deliveryBoyRepo repositories.DeliveryBoyRepository,
	deliveryRepo repositories.DeliveryRepository,
) services.DeliveryBoyServiceInterface {
	return services.NewDeliveryBoyService(deliveryBoyRepo, deliveryRepo)
}
