package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdvanceOrder is a prepaid reservation for fish to be collected later.
// Orders are deleted ("marked done") once fulfilled.
type AdvanceOrder struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	FishType  string          `gorm:"type:varchar(100);not null" json:"fish_type"`
	Advance   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"advance"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Contact   string          `gorm:"type:varchar(50)" json:"contact"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
