package controllers_fx

import (
	"go.uber.org/fx"

	"fruitbox/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewDeliveryController),
	fx.Provide(controllers.NewVerificationController),
	fx.Provide(controllers.NewDeliveryBoyController))
