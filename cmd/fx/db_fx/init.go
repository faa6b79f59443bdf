package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fruitbox/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideTxRunner)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideTxRunner(db *gorm.DB) infra.TxRunner {
	return infra.NewTxRunner(db)
}
