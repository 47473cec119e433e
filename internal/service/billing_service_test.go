package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fishshop-backend/internal/billing"
	"fishshop-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeBillRepo struct {
	bills map[uuid.UUID]*model.Bill
	items []model.BillItem
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: map[uuid.UUID]*model.Bill{}}
}

func (f *fakeBillRepo) Create(ctx context.Context, bill *model.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	cp := *bill
	f.bills[bill.ID] = &cp
	return nil
}

func (f *fakeBillRepo) CreateItem(ctx context.Context, item *model.BillItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	bill, ok := f.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *bill
	for _, item := range f.items {
		if item.BillID == id {
			cp.Items = append(cp.Items, item)
		}
	}
	return &cp, nil
}

func (f *fakeBillRepo) List(ctx context.Context) ([]model.Bill, error) {
	out := make([]model.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBillRepo) Search(ctx context.Context, name, phone string) ([]model.Bill, error) {
	return f.List(ctx)
}

type fakeCustomerRepo struct {
	customers []model.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *model.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			return &f.customers[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) FindByNameAndPhone(ctx context.Context, name, phone string) (*model.Customer, error) {
	for i := range f.customers {
		if strings.EqualFold(f.customers[i].Name, name) && f.customers[i].Phone == phone {
			return &f.customers[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) Search(ctx context.Context, name, phone string) ([]model.Customer, error) {
	return f.customers, nil
}

func validBillRequest() CreateBillRequest {
	return CreateBillRequest{
		CustomerName:  "Ravi",
		CustomerPhone: "9876543210",
		BillDate:      "2026-03-10",
		Items: []BillItemRequest{
			{FishName: "Pomfret", Quantity: 2, UnitPrice: 150},
			{FishName: "Salmon", Quantity: 1.5, UnitPrice: 100},
		},
		TaxPercent:      5,
		PreviousBalance: 50,
		AmountPaid:      200,
	}
}

func TestBillingCreateComputesTotals(t *testing.T) {
	billRepo := newFakeBillRepo()
	customerRepo := &fakeCustomerRepo{}
	svc := NewBillingService(billRepo, customerRepo, fakeTxManager{})

	bill, err := svc.Create(context.Background(), validBillRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !bill.Subtotal.Equal(decimal.RequireFromString("450.00")) {
		t.Errorf("Subtotal = %s, want 450.00", bill.Subtotal)
	}
	if !bill.Tax.Equal(decimal.RequireFromString("22.50")) {
		t.Errorf("Tax = %s, want 22.50", bill.Tax)
	}
	if !bill.TotalAmount.Equal(decimal.RequireFromString("472.50")) {
		t.Errorf("TotalAmount = %s, want 472.50", bill.TotalAmount)
	}
	if !bill.BalanceDue.Equal(decimal.RequireFromString("322.50")) {
		t.Errorf("BalanceDue = %s, want 322.50", bill.BalanceDue)
	}
	if len(bill.Items) != 2 {
		t.Errorf("stored items = %d, want 2", len(bill.Items))
	}
	if len(customerRepo.customers) != 1 {
		t.Errorf("customers created = %d, want 1", len(customerRepo.customers))
	}
}

func TestBillingCreateReusesExistingCustomer(t *testing.T) {
	billRepo := newFakeBillRepo()
	customerRepo := &fakeCustomerRepo{}
	svc := NewBillingService(billRepo, customerRepo, fakeTxManager{})

	if _, err := svc.Create(context.Background(), validBillRequest()); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validBillRequest()); err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if len(customerRepo.customers) != 1 {
		t.Errorf("customers = %d, want the same customer reused", len(customerRepo.customers))
	}
	if len(billRepo.bills) != 2 {
		t.Errorf("bills = %d, want 2", len(billRepo.bills))
	}
}

func TestBillingCreateRejectsInvalidBills(t *testing.T) {
	billRepo := newFakeBillRepo()
	customerRepo := &fakeCustomerRepo{}
	svc := NewBillingService(billRepo, customerRepo, fakeTxManager{})

	noCustomer := validBillRequest()
	noCustomer.CustomerName = ""
	if _, err := svc.Create(context.Background(), noCustomer); !errors.Is(err, billing.ErrCustomerName) {
		t.Errorf("missing customer = %v, want ErrCustomerName", err)
	}

	noItems := validBillRequest()
	noItems.Items = []BillItemRequest{{FishName: "", Quantity: 0, UnitPrice: 0}}
	if _, err := svc.Create(context.Background(), noItems); !errors.Is(err, billing.ErrNoValidItems) {
		t.Errorf("no valid items = %v, want ErrNoValidItems", err)
	}

	badDate := validBillRequest()
	badDate.BillDate = "10/03/2026"
	if _, err := svc.Create(context.Background(), badDate); err == nil {
		t.Error("expected error for malformed bill date")
	}

	if len(billRepo.bills) != 0 || len(billRepo.items) != 0 || len(customerRepo.customers) != 0 {
		t.Error("rejected bills must persist nothing")
	}
}

func TestBillingCreateSkipsBlankLines(t *testing.T) {
	billRepo := newFakeBillRepo()
	svc := NewBillingService(billRepo, &fakeCustomerRepo{}, fakeTxManager{})

	req := validBillRequest()
	req.Items = append(req.Items, BillItemRequest{FishName: "", Quantity: 0, UnitPrice: 0})

	bill, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(bill.Items) != 2 {
		t.Errorf("stored items = %d, blank line should be skipped", len(bill.Items))
	}
}

func TestBillingGetByID(t *testing.T) {
	billRepo := newFakeBillRepo()
	svc := NewBillingService(billRepo, &fakeCustomerRepo{}, fakeTxManager{})

	bill, err := svc.Create(context.Background(), validBillRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(context.Background(), bill.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != bill.ID {
		t.Errorf("got bill %s, want %s", got.ID, bill.ID)
	}

	if _, err := svc.GetByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("unknown id = %v, want ErrBillNotFound", err)
	}
	if _, err := svc.GetByID(context.Background(), "nope"); err == nil {
		t.Error("expected error for malformed id")
	}
}
