package postgres

import (
	"log"

	"github.com/rishabhvyas17/TapOnce-sub001/internal/config"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FulfillmentConfig) *gorm.DB {
	dsn := cfg.FulfillmentDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := db.AutoMigrate(
		&models.AgentModel{},
		&models.OrderModel{},
		&models.PayoutModel{},
		&models.ExpenseModel{},
	); err != nil {
		log.Fatalf("failed to run automigrations: %v\n", err.Error())
	}

	return db
}
