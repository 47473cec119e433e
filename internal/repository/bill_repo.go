package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	CreateItem(ctx context.Context, item *model.BillItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	Search(ctx context.Context, name, phone string) ([]model.Bill, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	return GetDB(ctx, r.db).Omit("Items", "Customer").Create(bill).Error
}

func (r *billRepository) CreateItem(ctx context.Context, item *model.BillItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	var bill model.Bill
	if err := GetDB(ctx, r.db).Preload("Items").Preload("Customer").
		First(&bill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	if err := GetDB(ctx, r.db).Preload("Items").Preload("Customer").
		Order("bill_date desc, created_at desc").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// Search filters by customer name and/or phone substring; both empty returns all.
func (r *billRepository) Search(ctx context.Context, name, phone string) ([]model.Bill, error) {
	var bills []model.Bill

	db := GetDB(ctx, r.db).Model(&model.Bill{}).
		Joins("LEFT JOIN customers ON customers.id = bills.customer_id")
	if name != "" {
		db = db.Where("customers.name ILIKE ?", "%"+name+"%")
	}
	if phone != "" {
		db = db.Where("customers.phone ILIKE ?", "%"+phone+"%")
	}

	if err := db.Preload("Items").Preload("Customer").
		Order("bills.bill_date desc, bills.created_at desc").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}
