package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceType enum constants
const (
	FinanceIn  = "in"
	FinanceOut = "out"
)

// PaymentMethod enum constants
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
)

// FinancialTransaction is a cash-in/cash-out ledger entry with an optional
// receipt image stored inline. Receipt bytes are never serialized with the
// entry; they are streamed separately from the receipt endpoint.
type FinancialTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TransactionType string          `gorm:"type:varchar(10);not null;index" json:"transaction_type"` // in, out
	PaymentMethod   string          `gorm:"type:varchar(20);not null" json:"payment_method"`         // cash, online
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	ClientName      string          `gorm:"type:varchar(255);index" json:"client_name"`
	ClientPhone     string          `gorm:"type:varchar(50);index" json:"client_phone"`
	ImageData       []byte          `gorm:"type:bytea" json:"-"`
	ImageName       string          `gorm:"type:varchar(255)" json:"image_name,omitempty"`
	ImageType       string          `gorm:"type:varchar(100)" json:"image_type,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}
