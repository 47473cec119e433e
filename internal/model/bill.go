package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a bill recipient, found or created by name/phone at save time.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone     string    `gorm:"type:varchar(50);index" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Bill is a finalized itemized sale document. All derived amounts
// (subtotal, tax, total, balance due) are recomputed from the line items
// before insert so the stored figures always satisfy
// balance_due = total_amount + previous_balance - amount_paid.
type Bill struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	BillDate        string          `gorm:"type:varchar(10);not null;index" json:"bill_date"`
	Items           []BillItem      `gorm:"foreignKey:BillID" json:"items"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"subtotal"`
	TaxPercent      decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0" json:"tax_percent"`
	Tax             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"tax"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	PreviousBalance decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"previous_balance"`
	AmountPaid      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_paid"`
	BalanceDue      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"balance_due"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// BillItem is one line of a bill.
type BillItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BillID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"bill_id"`
	FishItemID *uuid.UUID      `gorm:"type:uuid" json:"fish_item_id"`
	FishName   string          `gorm:"type:varchar(100);not null" json:"fish_name"`
	Quantity   float64         `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_price"`
}
