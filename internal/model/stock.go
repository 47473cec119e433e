package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMinStockLevel flags stock as low when quantity falls to or below it.
const DefaultMinStockLevel = 10

// StockLevel is the aggregate on-hand quantity of one fish type, maintained
// as a running sum of inventory movements and sales.
type StockLevel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FishType        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"fish_type"`
	CurrentQuantity float64   `gorm:"type:decimal(12,3);not null;default:0" json:"quantity"`
	Unit            string    `gorm:"type:varchar(20);not null;default:'kg'" json:"unit"`
	MinStockLevel   float64   `gorm:"type:decimal(12,3);not null;default:10" json:"min_stock_level"`
	LastUpdated     time.Time `gorm:"autoUpdateTime" json:"last_updated"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"-"`
}

// FishItem is a priced catalog entry used to prefill bill lines.
type FishItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CurrentPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"current_price"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
