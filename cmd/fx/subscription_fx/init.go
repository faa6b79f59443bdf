package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/repositories"
	"fruitbox/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	productRepo repositories.ProductRepository,
	userInfoRepo repositories.UserInfoRepository,
	deliveryRepo repositories.DeliveryRepository,
	scheduleService services.ScheduleServiceInterface,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, productRepo, userInfoRepo, deliveryRepo, scheduleService)
}
