package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/cmd/fx/account_fx"
	"fruitbox/cmd/fx/catalog_fx"
	"fruitbox/cmd/fx/controllers_fx"
	"fruitbox/cmd/fx/db_fx"
	"fruitbox/cmd/fx/delivery_fx"
	"fruitbox/cmd/fx/deliveryboy_fx"
	"fruitbox/cmd/fx/jobs_fx"
	"fruitbox/cmd/fx/mail_fx"
	"fruitbox/cmd/fx/subscription_fx"
	"fruitbox/cmd/fx/verification_fx"
	"fruitbox/internal/api/controllers"
	"fruitbox/internal/infra"
	"fruitbox/internal/jobs"
	"fruitbox/pkg/middleware"
	"fruitbox/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		subscription_fx.Module,
		delivery_fx.Module,
		verification_fx.Module,
		deliveryboy_fx.Module,
		mail_fx.Module,
		jobs_fx.Module,
		controllers_fx.Module,

		fx.Invoke(Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.Invoke(StartScheduler),
	)

	app.Run()
}

func Migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func StartScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			<-scheduler.Stop().Done()
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	deliveryController *controllers.DeliveryController,
	verificationController *controllers.VerificationController,
	deliveryBoyController *controllers.DeliveryBoyController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		catalogController,
		subscriptionController,
		deliveryController,
		verificationController,
		deliveryBoyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	subscriptionController *controllers.SubscriptionController,
	deliveryController *controllers.DeliveryController,
	verificationController *controllers.VerificationController,
	deliveryBoyController *controllers.DeliveryBoyController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me/info", middleware.JWTAuthMiddleware(), accountController.GetUserInfo)
	accounts.PUT("/me/info", middleware.JWTAuthMiddleware(), accountController.UpsertUserInfo)

	products := api.Group("/products")
	products.GET("", catalogController.ListProducts)
	products.GET("/:id", catalogController.GetProductById)

	subscriptions := api.Group("/subscriptions", middleware.JWTAuthMiddleware())
	subscriptions.POST("", subscriptionController.Create)
	subscriptions.GET("/mine", subscriptionController.ListMine)
	subscriptions.PUT("/update-status", middleware.RoleMiddleware(utils.RoleAdmin), subscriptionController.UpdateStatus)
	subscriptions.POST("/:id/pause-reschedule", subscriptionController.PauseReschedule)

	deliveries := api.Group("/deliveries", middleware.JWTAuthMiddleware())
	deliveries.GET("/mine", deliveryController.ListMine)
	deliveries.PUT("/status", middleware.RoleMiddleware(utils.RoleDeliveryBoy, utils.RoleAdmin), deliveryController.UpdateStatus)
	deliveries.POST("/admin-leave", middleware.RoleMiddleware(utils.RoleAdmin), deliveryController.AdminLeave)
	deliveries.POST("/deliverable", verificationController.Submit)
	deliveries.GET("/deliverable", verificationController.ListMine)
	deliveries.PUT("/admin-deliverable", middleware.RoleMiddleware(utils.RoleAdmin), verificationController.Decide)
	deliveries.GET("/get-all", middleware.RoleMiddleware(utils.RoleAdmin), verificationController.ListPending)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleAdmin))
	admin.GET("/subscriptions", subscriptionController.ListAll)
	admin.POST("/run-sweep", deliveryController.RunSweep)

	deliveryBoys := api.Group("/delivery-boys")
	deliveryBoys.POST("/register", deliveryBoyController.Register)
	deliveryBoys.POST("/login", deliveryBoyController.Login)
	deliveryBoys.PUT("/profile", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleDeliveryBoy), deliveryBoyController.UpdateProfile)
	deliveryBoys.GET("/today", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleDeliveryBoy), deliveryBoyController.TodayDeliveries)
}
