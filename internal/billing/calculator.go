// Package billing holds the bill arithmetic and line validation rules,
// kept free of persistence so every derived figure is checkable in isolation.
package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNoValidItems    = errors.New("bill must contain at least one valid line item")
	ErrCustomerName    = errors.New("customer name is required")
	ErrNegativeAmounts = errors.New("previous balance and amount paid must not be negative")
)

// Line is one bill row candidate before totals are computed.
type Line struct {
	FishName  string
	Quantity  float64
	UnitPrice decimal.Decimal
}

// LineTotal returns round(quantity x unit price, 2).
func (l Line) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Quantity).Mul(l.UnitPrice).Round(2)
}

// Valid reports whether the line may enter a bill: non-empty fish name and
// strictly positive quantity and price.
func (l Line) Valid() bool {
	return l.FishName != "" && l.Quantity > 0 && l.UnitPrice.IsPositive()
}

// Totals are the derived amounts of a finalized bill.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxPercent decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	BalanceDue decimal.Decimal
}

// Compute derives all bill totals from the valid lines:
//
//	subtotal    = sum of per-line totals
//	tax         = subtotal x taxPercent / 100
//	total       = subtotal + tax
//	balance due = total + previousBalance - amountPaid
//
// Every monetary figure is rounded to 2 decimal places.
func Compute(lines []Line, taxPercent, previousBalance, amountPaid decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		if !l.Valid() {
			continue
		}
		subtotal = subtotal.Add(l.LineTotal())
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(tax).Round(2)
	balanceDue := total.Add(previousBalance).Sub(amountPaid).Round(2)

	return Totals{
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		Tax:        tax,
		Total:      total,
		BalanceDue: balanceDue,
	}
}

// Validate enforces the finalize/save preconditions: a non-empty customer
// name, at least one valid line, and sane balance figures. A bill that fails
// validation must not be persisted.
func Validate(customerName string, lines []Line, previousBalance, amountPaid decimal.Decimal) error {
	if customerName == "" {
		return ErrCustomerName
	}

	valid := 0
	for _, l := range lines {
		if l.Valid() {
			valid++
		}
	}
	if valid == 0 {
		return ErrNoValidItems
	}

	if previousBalance.IsNegative() || amountPaid.IsNegative() {
		return ErrNegativeAmounts
	}

	return nil
}
