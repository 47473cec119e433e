package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"gorm.io/gorm"
)

type FishItemRepository interface {
	List(ctx context.Context) ([]model.FishItem, error)
}

type fishItemRepository struct {
	db *gorm.DB
}

func NewFishItemRepository(db *gorm.DB) FishItemRepository {
	return &fishItemRepository{db: db}
}

func (r *fishItemRepository) List(ctx context.Context) ([]model.FishItem, error) {
	var items []model.FishItem
	if err := GetDB(ctx, r.db).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
