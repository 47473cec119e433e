package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdvanceOrderRepository interface {
	Create(ctx context.Context, order *model.AdvanceOrder) error
	List(ctx context.Context, date string) ([]model.AdvanceOrder, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AdvanceOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type advanceOrderRepository struct {
	db *gorm.DB
}

func NewAdvanceOrderRepository(db *gorm.DB) AdvanceOrderRepository {
	return &advanceOrderRepository{db: db}
}

func (r *advanceOrderRepository) Create(ctx context.Context, order *model.AdvanceOrder) error {
	return GetDB(ctx, r.db).Create(order).Error
}

// List returns all orders newest first, or only those on an exact date.
func (r *advanceOrderRepository) List(ctx context.Context, date string) ([]model.AdvanceOrder, error) {
	var orders []model.AdvanceOrder

	db := GetDB(ctx, r.db).Model(&model.AdvanceOrder{})
	if date != "" {
		db = db.Where("date = ?", date)
	}

	if err := db.Order("date desc, created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *advanceOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AdvanceOrder, error) {
	var order model.AdvanceOrder
	if err := GetDB(ctx, r.db).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *advanceOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.AdvanceOrder{}).Error
}
