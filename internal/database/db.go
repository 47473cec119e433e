package database

import (
	"log"

	"fishshop-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.InventoryItem{},
		&model.SaleRecord{},
		&model.StockLevel{},
		&model.FishItem{},
		&model.Customer{},
		&model.Bill{},
		&model.BillItem{},
		&model.FinancialTransaction{},
		&model.AdvanceOrder{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	seedFishItems(db)

	return db, nil
}

// seedFishItems inserts the default price list, skipping names that already exist.
func seedFishItems(db *gorm.DB) {
	defaults := []model.FishItem{
		{Name: "Pomfret", CurrentPrice: decimal.NewFromFloat(350.00)},
		{Name: "Salmon", CurrentPrice: decimal.NewFromFloat(850.00)},
		{Name: "Tuna", CurrentPrice: decimal.NewFromFloat(600.00)},
		{Name: "Sardine", CurrentPrice: decimal.NewFromFloat(200.00)},
		{Name: "Mackerel", CurrentPrice: decimal.NewFromFloat(250.00)},
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&defaults).Error; err != nil {
		log.Println("WARNING: Failed to seed fish items:", err)
	}
}
