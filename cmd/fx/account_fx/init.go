package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/repositories"
	"fruitbox/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideUserInfoRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideUserInfoRepo(db *gorm.DB) repositories.UserInfoRepository {
	return repositories.NewUserInfoRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, userInfoRepo repositories.UserInfoRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, userInfoRepo)
}
