package service

import (
	"context"
	"time"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes shared by the service tests.

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeStockRepo struct {
	levels     map[string]*model.StockLevel
	deltas     []float64
	resetCalls int
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: map[string]*model.StockLevel{}}
}

func (f *fakeStockRepo) List(ctx context.Context) ([]model.StockLevel, error) {
	out := make([]model.StockLevel, 0, len(f.levels))
	for _, l := range f.levels {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeStockRepo) FindByFishType(ctx context.Context, fishType string) (*model.StockLevel, error) {
	l, ok := f.levels[fishType]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeStockRepo) FindByFishTypeForUpdate(ctx context.Context, fishType string) (*model.StockLevel, error) {
	return f.FindByFishType(ctx, fishType)
}

func (f *fakeStockRepo) ApplyDelta(ctx context.Context, fishType string, delta float64) error {
	f.deltas = append(f.deltas, delta)
	l, ok := f.levels[fishType]
	if !ok {
		l = &model.StockLevel{FishType: fishType}
		f.levels[fishType] = l
	}
	l.CurrentQuantity += delta
	return nil
}

func (f *fakeStockRepo) ResetAll(ctx context.Context) error {
	f.resetCalls++
	for _, l := range f.levels {
		l.CurrentQuantity = 0
	}
	return nil
}

func (f *fakeStockRepo) FishTypes(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(f.levels))
	for t := range f.levels {
		out = append(out, t)
	}
	return out, nil
}

type fakeSaleRepo struct {
	created []model.SaleRecord
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *model.SaleRecord) error {
	f.created = append(f.created, *sale)
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, limit int) ([]model.SaleRecord, error) {
	return f.created, nil
}

func (f *fakeSaleRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeSaleRepo) TotalSalesValue(ctx context.Context) (float64, error)     { return 0, nil }
func (f *fakeSaleRepo) TotalPurchasesValue(ctx context.Context) (float64, error) { return 0, nil }
func (f *fakeSaleRepo) MonthlySales(ctx context.Context) ([]repository.MonthlyPoint, error) {
	return nil, nil
}
func (f *fakeSaleRepo) MonthlyPurchases(ctx context.Context) ([]repository.MonthlyPoint, error) {
	return nil, nil
}
func (f *fakeSaleRepo) SalesByFishType(ctx context.Context) ([]repository.FishBreakdown, error) {
	return nil, nil
}

type fakeInventoryRepo struct {
	created []model.InventoryItem
}

func (f *fakeInventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	f.created = append(f.created, *item)
	return nil
}

func (f *fakeInventoryRepo) List(ctx context.Context, transactionType string, limit int) ([]model.InventoryItem, error) {
	return f.created, nil
}

func (f *fakeInventoryRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeAdvanceOrderRepo struct {
	orders map[uuid.UUID]model.AdvanceOrder
}

func newFakeAdvanceOrderRepo() *fakeAdvanceOrderRepo {
	return &fakeAdvanceOrderRepo{orders: map[uuid.UUID]model.AdvanceOrder{}}
}

func (f *fakeAdvanceOrderRepo) Create(ctx context.Context, order *model.AdvanceOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeAdvanceOrderRepo) List(ctx context.Context, date string) ([]model.AdvanceOrder, error) {
	out := make([]model.AdvanceOrder, 0, len(f.orders))
	for _, o := range f.orders {
		if date == "" || o.Date == date {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeAdvanceOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.AdvanceOrder, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (f *fakeAdvanceOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

type fakeFishItemRepo struct {
	items []model.FishItem
}

func (f fakeFishItemRepo) List(ctx context.Context) ([]model.FishItem, error) {
	return f.items, nil
}

type fakeTransactionRepo struct {
	created []model.FinancialTransaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *model.FinancialTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	f.created = append(f.created, *tx)
	return nil
}

func (f *fakeTransactionRepo) List(ctx context.Context, limit int) ([]model.FinancialTransaction, error) {
	return f.created, nil
}

func (f *fakeTransactionRepo) SearchByDateRange(ctx context.Context, start, end *time.Time) ([]model.FinancialTransaction, error) {
	out := make([]model.FinancialTransaction, 0, len(f.created))
	for _, tx := range f.created {
		if start != nil && tx.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && !tx.CreatedAt.Before(end.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (f *fakeTransactionRepo) FindReceipt(ctx context.Context, id uuid.UUID) (*model.FinancialTransaction, error) {
	for _, tx := range f.created {
		if tx.ID == id {
			return &tx, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
