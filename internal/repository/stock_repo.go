package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository interface {
	List(ctx context.Context) ([]model.StockLevel, error)
	FindByFishType(ctx context.Context, fishType string) (*model.StockLevel, error)
	FindByFishTypeForUpdate(ctx context.Context, fishType string) (*model.StockLevel, error)
	ApplyDelta(ctx context.Context, fishType string, delta float64) error
	ResetAll(ctx context.Context) error
	FishTypes(ctx context.Context) ([]string, error)
}

type stockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) List(ctx context.Context) ([]model.StockLevel, error) {
	var levels []model.StockLevel
	if err := GetDB(ctx, r.db).Order("fish_type asc").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *stockRepository) FindByFishType(ctx context.Context, fishType string) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := GetDB(ctx, r.db).Where("fish_type = ?", fishType).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *stockRepository) FindByFishTypeForUpdate(ctx context.Context, fishType string) (*model.StockLevel, error) {
	var level model.StockLevel
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("fish_type = ?", fishType).First(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

// ApplyDelta adds delta to the fish type's running quantity, creating the
// stock row at zero first if the fish type has never been seen.
func (r *stockRepository) ApplyDelta(ctx context.Context, fishType string, delta float64) error {
	db := GetDB(ctx, r.db)

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fish_type"}},
		DoNothing: true,
	}).Create(&model.StockLevel{FishType: fishType, CurrentQuantity: 0, Unit: "kg", MinStockLevel: model.DefaultMinStockLevel}).Error; err != nil {
		return err
	}

	return db.Model(&model.StockLevel{}).
		Where("fish_type = ?", fishType).
		Update("current_quantity", gorm.Expr("current_quantity + ?", delta)).Error
}

func (r *stockRepository) ResetAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Model(&model.StockLevel{}).
		Where("1 = 1").
		Update("current_quantity", 0).Error
}

func (r *stockRepository) FishTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := GetDB(ctx, r.db).Model(&model.StockLevel{}).
		Distinct("fish_type").
		Order("fish_type asc").
		Pluck("fish_type", &types).Error
	return types, err
}
