package finance

import (
	"testing"
	"time"

	"fishshop-backend/internal/model"

	"github.com/shopspring/decimal"
)

func tx(txType string, amount string, createdAt time.Time) model.FinancialTransaction {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return model.FinancialTransaction{
		TransactionType: txType,
		Amount:          a,
		CreatedAt:       createdAt,
	}
}

func TestSummarizePartitionsInAndOut(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, -1)

	txs := []model.FinancialTransaction{
		tx(model.FinanceIn, "100.50", day.Add(9*time.Hour)),
		tx(model.FinanceOut, "40.25", day.Add(12*time.Hour)),
		tx(model.FinanceIn, "60", other),
		tx(model.FinanceOut, "10", other),
	}

	dateSummary, totalSummary := Summarize(txs, day)

	if dateSummary.InCount != 1 || dateSummary.OutCount != 1 {
		t.Errorf("date counts = %d in / %d out, want 1/1", dateSummary.InCount, dateSummary.OutCount)
	}
	if !dateSummary.InTotal.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("date InTotal = %s, want 100.50", dateSummary.InTotal)
	}
	if !dateSummary.OutTotal.Equal(decimal.RequireFromString("40.25")) {
		t.Errorf("date OutTotal = %s, want 40.25", dateSummary.OutTotal)
	}

	if totalSummary.InCount != 2 || totalSummary.OutCount != 2 {
		t.Errorf("total counts = %d in / %d out, want 2/2", totalSummary.InCount, totalSummary.OutCount)
	}
	if !totalSummary.InTotal.Equal(decimal.RequireFromString("160.50")) {
		t.Errorf("total InTotal = %s, want 160.50", totalSummary.InTotal)
	}
}

func TestSummarizeEveryTransactionCountedOnce(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	txs := []model.FinancialTransaction{
		tx(model.FinanceIn, "10", day),
		tx(model.FinanceOut, "20", day.AddDate(0, 0, 1)),
		tx(model.FinanceIn, "30", day.AddDate(0, -1, 0)),
	}

	dateSummary, totalSummary := Summarize(txs, day)

	if got := totalSummary.InCount + totalSummary.OutCount; got != len(txs) {
		t.Errorf("total counted %d transactions, want %d", got, len(txs))
	}
	if got := dateSummary.InCount + dateSummary.OutCount; got > len(txs) {
		t.Errorf("date summary counted %d, more than exist", got)
	}
	if dateSummary.InTotal.GreaterThan(totalSummary.InTotal) {
		t.Errorf("date InTotal %s exceeds total %s", dateSummary.InTotal, totalSummary.InTotal)
	}
	if dateSummary.OutTotal.GreaterThan(totalSummary.OutTotal) {
		t.Errorf("date OutTotal %s exceeds total %s", dateSummary.OutTotal, totalSummary.OutTotal)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	dateSummary, totalSummary := Summarize(nil, time.Now())

	if dateSummary.InCount != 0 || totalSummary.OutCount != 0 {
		t.Errorf("empty input should produce zero tallies, got %+v / %+v", dateSummary, totalSummary)
	}
	if !totalSummary.InTotal.IsZero() || !totalSummary.OutTotal.IsZero() {
		t.Errorf("empty input totals should be zero, got %+v", totalSummary)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2026-03-10")
	if err != nil {
		t.Fatalf("NormalizeDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("NormalizeDate = %v", got)
	}

	if _, err := NormalizeDate("10-03-2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := NormalizeDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}
