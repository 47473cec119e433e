package service

import (
	"context"
	"errors"
	"fmt"

	"fishshop-backend/internal/billing"
	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrBillNotFound = errors.New("bill not found")

// DTOs
type BillItemRequest struct {
	FishItemID string  `json:"fish_item_id"`
	FishName   string  `json:"fish_name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type CreateBillRequest struct {
	CustomerName    string            `json:"customer_name" binding:"required"`
	CustomerPhone   string            `json:"customer_phone"`
	BillDate        string            `json:"bill_date"`
	Items           []BillItemRequest `json:"items" binding:"required,min=1"`
	TaxPercent      float64           `json:"tax_percent" binding:"min=0"`
	PreviousBalance float64           `json:"previous_balance" binding:"min=0"`
	AmountPaid      float64           `json:"amount_paid" binding:"min=0"`
}

type BillingService interface {
	Create(ctx context.Context, req CreateBillRequest) (*model.Bill, error)
	GetByID(ctx context.Context, id string) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	Search(ctx context.Context, name, phone string) ([]model.Bill, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	SearchCustomers(ctx context.Context, name, phone string) ([]model.Customer, error)
}

type billingService struct {
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
}

func NewBillingService(
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
	}
}

// Create validates the bill, recomputes every derived amount from the line
// items, finds or creates the customer, and persists the whole document in a
// single transaction. A bill that fails validation persists nothing.
func (s *billingService) Create(ctx context.Context, req CreateBillRequest) (*model.Bill, error) {
	lines := make([]billing.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, billing.Line{
			FishName:  item.FishName,
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
		})
	}

	previousBalance := decimal.NewFromFloat(req.PreviousBalance).Round(2)
	amountPaid := decimal.NewFromFloat(req.AmountPaid).Round(2)

	if err := billing.Validate(req.CustomerName, lines, previousBalance, amountPaid); err != nil {
		return nil, err
	}

	billDate := req.BillDate
	if billDate == "" {
		billDate = todayDate()
	} else if _, err := normalizeDate(billDate); err != nil {
		return nil, fmt.Errorf("invalid bill date %q: %w", billDate, err)
	}

	totals := billing.Compute(lines, decimal.NewFromFloat(req.TaxPercent), previousBalance, amountPaid)

	bill := model.Bill{
		BillDate:        billDate,
		Subtotal:        totals.Subtotal,
		TaxPercent:      totals.TaxPercent,
		Tax:             totals.Tax,
		TotalAmount:     totals.Total,
		PreviousBalance: previousBalance,
		AmountPaid:      amountPaid,
		BalanceDue:      totals.BalanceDue,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.findOrCreateCustomer(txCtx, req.CustomerName, req.CustomerPhone)
		if err != nil {
			return err
		}
		bill.CustomerID = &customer.ID

		if err := s.billRepo.Create(txCtx, &bill); err != nil {
			return fmt.Errorf("failed to save bill: %w", err)
		}

		for i, item := range req.Items {
			line := lines[i]
			if !line.Valid() {
				continue
			}

			billItem := model.BillItem{
				BillID:     bill.ID,
				FishName:   item.FishName,
				Quantity:   item.Quantity,
				UnitPrice:  line.UnitPrice.Round(2),
				TotalPrice: line.LineTotal(),
			}
			if fid, err := uuid.Parse(item.FishItemID); err == nil {
				billItem.FishItemID = &fid
			}

			if err := s.billRepo.CreateItem(txCtx, &billItem); err != nil {
				return fmt.Errorf("failed to save bill item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the response carries the stored items and customer.
	return s.billRepo.FindByID(ctx, bill.ID)
}

func (s *billingService) findOrCreateCustomer(ctx context.Context, name, phone string) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByNameAndPhone(ctx, name, phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}

	customer = &model.Customer{Name: name, Phone: phone}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *billingService) GetByID(ctx context.Context, id string) (*model.Bill, error) {
	billID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid bill id: %w", err)
	}

	bill, err := s.billRepo.FindByID(ctx, billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bill, nil
}

func (s *billingService) List(ctx context.Context) ([]model.Bill, error) {
	return s.billRepo.List(ctx)
}

func (s *billingService) Search(ctx context.Context, name, phone string) ([]model.Bill, error) {
	return s.billRepo.Search(ctx, name, phone)
}

func (s *billingService) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *billingService) SearchCustomers(ctx context.Context, name, phone string) ([]model.Customer, error) {
	return s.customerRepo.Search(ctx, name, phone)
}
