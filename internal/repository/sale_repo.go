package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"gorm.io/gorm"
)

// MonthlyPoint is one month's aggregated sales or purchases value.
type MonthlyPoint struct {
	Month string  `json:"month"` // YYYY-MM
	Value float64 `json:"value"`
}

// FishBreakdown is total sold quantity and value for one fish type.
type FishBreakdown struct {
	FishType      string  `json:"fish_type"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}

type SaleRepository interface {
	Create(ctx context.Context, sale *model.SaleRecord) error
	List(ctx context.Context, limit int) ([]model.SaleRecord, error)
	CountAll(ctx context.Context) (int64, error)
	TotalSalesValue(ctx context.Context) (float64, error)
	TotalPurchasesValue(ctx context.Context) (float64, error)
	MonthlySales(ctx context.Context) ([]MonthlyPoint, error)
	MonthlyPurchases(ctx context.Context) ([]MonthlyPoint, error)
	SalesByFishType(ctx context.Context) ([]FishBreakdown, error)
}

type saleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.SaleRecord) error {
	return GetDB(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) List(ctx context.Context, limit int) ([]model.SaleRecord, error) {
	var sales []model.SaleRecord
	db := GetDB(ctx, r.db).Order("date desc, created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.SaleRecord{}).Count(&total).Error
	return total, err
}

func (r *saleRepository) TotalSalesValue(ctx context.Context) (float64, error) {
	var result struct {
		Value float64
	}
	err := GetDB(ctx, r.db).Model(&model.SaleRecord{}).
		Select("COALESCE(SUM(total_price), 0) as value").
		Where("transaction_type = ?", model.MovementOut).
		Scan(&result).Error
	return result.Value, err
}

func (r *saleRepository) TotalPurchasesValue(ctx context.Context) (float64, error) {
	var result struct {
		Value float64
	}
	err := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
		Select("COALESCE(SUM(total_price), 0) as value").
		Where("transaction_type = ?", model.MovementIn).
		Scan(&result).Error
	return result.Value, err
}

func (r *saleRepository) MonthlySales(ctx context.Context) ([]MonthlyPoint, error) {
	var points []MonthlyPoint
	err := GetDB(ctx, r.db).Model(&model.SaleRecord{}).
		Select("LEFT(date, 7) as month, COALESCE(SUM(CASE WHEN transaction_type = ? THEN total_price ELSE 0 END), 0) as value", model.MovementOut).
		Group("month").
		Order("month").
		Scan(&points).Error
	return points, err
}

func (r *saleRepository) MonthlyPurchases(ctx context.Context) ([]MonthlyPoint, error) {
	var points []MonthlyPoint
	err := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
		Select("LEFT(date, 7) as month, COALESCE(SUM(CASE WHEN transaction_type = ? THEN total_price ELSE 0 END), 0) as value", model.MovementIn).
		Group("month").
		Order("month").
		Scan(&points).Error
	return points, err
}

func (r *saleRepository) SalesByFishType(ctx context.Context) ([]FishBreakdown, error) {
	var rows []FishBreakdown
	err := GetDB(ctx, r.db).Model(&model.SaleRecord{}).
		Select("fish_type, SUM(quantity) as total_quantity, SUM(total_price) as total_value").
		Where("transaction_type = ?", model.MovementOut).
		Group("fish_type").
		Order("total_value DESC").
		Scan(&rows).Error
	return rows, err
}
