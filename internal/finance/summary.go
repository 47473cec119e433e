// Package finance holds the transaction tally logic for the cash ledger.
package finance

import (
	"time"

	"fishshop-backend/internal/model"

	"github.com/shopspring/decimal"
)

// Tally counts and sums in/out transactions.
type Tally struct {
	InCount  int             `json:"in_count"`
	OutCount int             `json:"out_count"`
	InTotal  decimal.Decimal `json:"in_total"`
	OutTotal decimal.Decimal `json:"out_total"`
}

func newTally() Tally {
	return Tally{InTotal: decimal.Zero, OutTotal: decimal.Zero}
}

func (t *Tally) add(tx model.FinancialTransaction) {
	if tx.TransactionType == model.FinanceIn {
		t.InCount++
		t.InTotal = t.InTotal.Add(tx.Amount)
	} else {
		t.OutCount++
		t.OutTotal = t.OutTotal.Add(tx.Amount)
	}
}

// Summarize partitions every transaction into exactly one of in/out and
// produces two parallel tallies: one scoped to transactions created on the
// given calendar date, one over the whole list. The date-scoped tally is by
// construction a subset of the overall one.
func Summarize(transactions []model.FinancialTransaction, date time.Time) (dateSummary, totalSummary Tally) {
	dateSummary = newTally()
	totalSummary = newTally()

	y, m, d := date.Date()
	for _, tx := range transactions {
		totalSummary.add(tx)

		ty, tm, td := tx.CreatedAt.Date()
		if ty == y && tm == m && td == d {
			dateSummary.add(tx)
		}
	}
	return dateSummary, totalSummary
}

// NormalizeDate parses a calendar-date string (YYYY-MM-DD) for use as a
// query bound.
func NormalizeDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
