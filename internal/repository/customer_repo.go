package repository

import (
	"context"

	"fishshop-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	FindByNameAndPhone(ctx context.Context, name, phone string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, name, phone string) ([]model.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return GetDB(ctx, r.db).Create(customer).Error
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByNameAndPhone(ctx context.Context, name, phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := GetDB(ctx, r.db).Where("name = ? AND phone = ?", name, phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := GetDB(ctx, r.db).Order("created_at desc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Search(ctx context.Context, name, phone string) ([]model.Customer, error) {
	var customers []model.Customer

	db := GetDB(ctx, r.db).Model(&model.Customer{})
	if name != "" {
		db = db.Where("name ILIKE ?", "%"+name+"%")
	}
	if phone != "" {
		db = db.Where("phone ILIKE ?", "%"+phone+"%")
	}

	if err := db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
