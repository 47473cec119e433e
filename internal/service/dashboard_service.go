package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// DTOs
type SalesSummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalPurchases    float64 `json:"total_purchases"`
	Profit            float64 `json:"profit"`
	TotalTransactions int64   `json:"total_transactions"`
}

// TrendPoint carries one month's sales and purchases values for the chart.
type TrendPoint struct {
	Month     string  `json:"month"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*SalesSummary, error)
	MonthlyTrend(ctx context.Context) ([]TrendPoint, error)
	SalesByFishType(ctx context.Context) ([]repository.FishBreakdown, error)
	RecentMovements(ctx context.Context, limit int) ([]model.InventoryItem, error)
	ExportReport(ctx context.Context) ([]byte, error)
}

type dashboardService struct {
	saleRepo      repository.SaleRepository
	inventoryRepo repository.InventoryRepository
}

func NewDashboardService(saleRepo repository.SaleRepository, inventoryRepo repository.InventoryRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo, inventoryRepo: inventoryRepo}
}

// Summary aggregates overall sales, purchases and profit. Profit is sales
// value minus purchase value; the transaction count spans both ledgers.
func (s *dashboardService) Summary(ctx context.Context) (*SalesSummary, error) {
	totalSales, err := s.saleRepo.TotalSalesValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total sales: %w", err)
	}
	totalPurchases, err := s.saleRepo.TotalPurchasesValue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to total purchases: %w", err)
	}

	saleCount, err := s.saleRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	movementCount, err := s.inventoryRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &SalesSummary{
		TotalSales:        totalSales,
		TotalPurchases:    totalPurchases,
		Profit:            totalSales - totalPurchases,
		TotalTransactions: saleCount + movementCount,
	}, nil
}

// MonthlyTrend merges the sales and purchases series on month labels so both
// chart lines share one axis.
func (s *dashboardService) MonthlyTrend(ctx context.Context) ([]TrendPoint, error) {
	sales, err := s.saleRepo.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.saleRepo.MonthlyPurchases(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*TrendPoint)
	var months []string
	for _, p := range sales {
		byMonth[p.Month] = &TrendPoint{Month: p.Month, Sales: p.Value}
		months = append(months, p.Month)
	}
	for _, p := range purchases {
		if existing, ok := byMonth[p.Month]; ok {
			existing.Purchases = p.Value
			continue
		}
		byMonth[p.Month] = &TrendPoint{Month: p.Month, Purchases: p.Value}
		months = append(months, p.Month)
	}

	// months arrive sorted per series; the merged label set still needs
	// ordering since the two series can interleave.
	sort.Strings(months)

	trend := make([]TrendPoint, 0, len(months))
	for _, m := range months {
		trend = append(trend, *byMonth[m])
	}
	return trend, nil
}

func (s *dashboardService) SalesByFishType(ctx context.Context) ([]repository.FishBreakdown, error) {
	return s.saleRepo.SalesByFishType(ctx)
}

func (s *dashboardService) RecentMovements(ctx context.Context, limit int) ([]model.InventoryItem, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.inventoryRepo.List(ctx, "", limit)
}

// ExportReport renders the summary and per-fish breakdown into an XLSX
// workbook for download.
func (s *dashboardService) ExportReport(ctx context.Context) ([]byte, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.SalesByFishType(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Total Sales", summary.TotalSales},
		{"Total Purchases", summary.TotalPurchases},
		{"Profit", summary.Profit},
		{"Transactions", summary.TotalTransactions},
		{},
		{"Fish Type", "Quantity Sold", "Sale Value"},
	}
	for _, b := range breakdown {
		rows = append(rows, []interface{}{b.FishType, b.TotalQuantity, b.TotalValue})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
