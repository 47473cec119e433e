package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType enum constants
const (
	MovementIn  = "IN"
	MovementOut = "OUT"
)

// InventoryItem is one purchase/movement entry: a supplier delivery (IN)
// or a manual stock removal (OUT). TotalPrice is always recomputed from
// quantity and unit price server-side.
type InventoryItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date            string          `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	SupplierName    string          `gorm:"type:varchar(255)" json:"supplier_name"`
	SupplierContact string          `gorm:"type:varchar(50)" json:"supplier_contact"`
	FishType        string          `gorm:"type:varchar(100);not null;index" json:"fish_type"`
	TransactionType string          `gorm:"type:varchar(10);not null" json:"transaction_type"` // IN, OUT
	Quantity        float64         `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_price"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// SaleRecord is a completed counter sale of one fish type. Creating a sale
// deducts the sold quantity from stock in the same transaction.
type SaleRecord struct {
	ID               uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date             string          `gorm:"type:varchar(10);not null;index" json:"date"`
	PurchaserName    string          `gorm:"type:varchar(255);not null" json:"purchaser_name"`
	PurchaserContact string          `gorm:"type:varchar(50)" json:"purchaser_contact"`
	FishType         string          `gorm:"type:varchar(100);not null;index" json:"fish_type"`
	TransactionType  string          `gorm:"type:varchar(10);not null;default:'OUT'" json:"transaction_type"`
	Quantity         float64         `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_price"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
