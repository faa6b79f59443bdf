package delivery_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/infra"
	"fruitbox/internal/repositories"
	"fruitbox/internal/services"
)

var Module = fx.Provide(
	provideScheduleService, provideDeliveryRepo, provideCancellationRepo)

func provideDeliveryRepo(db *gorm.DB) repositories.DeliveryRepository {
	return repositories.NewDeliveryRepository(db)
}

func provideCancellationRepo(db *gorm.DB) repositories.CancellationRepository {
	return repositories.NewCancellationRepository(db)
}

func provideScheduleService(
	subscriptionRepo repositories.SubscriptionRepository,
	deliveryRepo repositories.DeliveryRepository,
	userInfoRepo repositories.UserInfoRepository,
	cancellationRepo repositories.CancellationRepository,
	tx infra.TxRunner,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(subscriptionRepo, deliveryRepo, userInfoRepo, cancellationRepo, tx)
}
