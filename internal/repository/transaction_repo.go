package repository

import (
	"context"
	"time"

	"fishshop-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionColumns excludes image_data so list queries never drag
// receipt bytes out of the database.
const transactionColumns = "id, transaction_type, payment_method, amount, client_name, client_phone, image_name, image_type, notes, created_at"

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.FinancialTransaction) error
	List(ctx context.Context, limit int) ([]model.FinancialTransaction, error)
	SearchByDateRange(ctx context.Context, start, end *time.Time) ([]model.FinancialTransaction, error)
	FindReceipt(ctx context.Context, id uuid.UUID) (*model.FinancialTransaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *model.FinancialTransaction) error {
	return GetDB(ctx, r.db).Create(tx).Error
}

func (r *transactionRepository) List(ctx context.Context, limit int) ([]model.FinancialTransaction, error) {
	var txs []model.FinancialTransaction
	db := GetDB(ctx, r.db).Select(transactionColumns).Order("created_at desc")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// SearchByDateRange filters on the calendar date of created_at; either bound
// may be nil. Bounds are inclusive.
func (r *transactionRepository) SearchByDateRange(ctx context.Context, start, end *time.Time) ([]model.FinancialTransaction, error) {
	var txs []model.FinancialTransaction

	db := GetDB(ctx, r.db).Select(transactionColumns)
	if start != nil {
		db = db.Where("created_at >= ?", *start)
	}
	if end != nil {
		// end is a calendar date; include the whole day
		db = db.Where("created_at < ?", end.AddDate(0, 0, 1))
	}

	if err := db.Order("created_at desc").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepository) FindReceipt(ctx context.Context, id uuid.UUID) (*model.FinancialTransaction, error) {
	var tx model.FinancialTransaction
	if err := GetDB(ctx, r.db).Select("id, image_data, image_name, image_type").
		First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}
