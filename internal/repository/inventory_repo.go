package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	List(ctx context.Context, transactionType string, limit int) ([]model.InventoryItem, error)
	CountAll(ctx context.Context) (int64, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

func (r *inventoryRepository) List(ctx context.Context, transactionType string, limit int) ([]model.InventoryItem, error) {
	var items []model.InventoryItem

	db := GetDB(ctx, r.db).Model(&model.InventoryItem{})
	if transactionType != "" {
		db = db.Where("transaction_type = ?", transactionType)
	}
	db = db.Order("date desc, created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}

	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.InventoryItem{}).Count(&total).Error
	return total, err
}
