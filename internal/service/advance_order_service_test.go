package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestAdvanceOrderCreate(t *testing.T) {
	repo := newFakeAdvanceOrderRepo()
	svc := NewAdvanceOrderService(repo)

	order, err := svc.Create(context.Background(), CreateAdvanceOrderRequest{
		Date:     "2026-03-15",
		Amount:   1200,
		FishType: "Pomfret",
		Advance:  400,
		Name:     "Meena",
		Contact:  "9876543210",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.ID == uuid.Nil {
		t.Error("order should have an assigned id")
	}
	if !order.Amount.Equal(decimal.RequireFromString("1200.00")) {
		t.Errorf("Amount = %s, want 1200.00", order.Amount)
	}
	if !order.Advance.Equal(decimal.RequireFromString("400.00")) {
		t.Errorf("Advance = %s, want 400.00", order.Advance)
	}
}

func TestAdvanceOrderCreateRejectsAdvanceAboveAmount(t *testing.T) {
	svc := NewAdvanceOrderService(newFakeAdvanceOrderRepo())

	_, err := svc.Create(context.Background(), CreateAdvanceOrderRequest{
		Date:     "2026-03-15",
		Amount:   500,
		FishType: "Tuna",
		Advance:  600,
		Name:     "Meena",
	})
	if err == nil || !strings.Contains(err.Error(), "advance cannot exceed") {
		t.Errorf("expected advance validation error, got %v", err)
	}
}

func TestAdvanceOrderListFiltersByDate(t *testing.T) {
	repo := newFakeAdvanceOrderRepo()
	svc := NewAdvanceOrderService(repo)

	for _, date := range []string{"2026-03-15", "2026-03-15", "2026-03-16"} {
		if _, err := svc.Create(context.Background(), CreateAdvanceOrderRequest{
			Date: date, Amount: 100, FishType: "Tuna", Name: "Meena",
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	orders, err := svc.List(context.Background(), "2026-03-15")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("got %d orders for date, want 2", len(orders))
	}

	if _, err := svc.List(context.Background(), "not-a-date"); err == nil {
		t.Error("expected error for malformed date filter")
	}
}

func TestAdvanceOrderDelete(t *testing.T) {
	repo := newFakeAdvanceOrderRepo()
	svc := NewAdvanceOrderService(repo)

	order, err := svc.Create(context.Background(), CreateAdvanceOrderRequest{
		Date: "2026-03-15", Amount: 100, FishType: "Tuna", Name: "Meena",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), order.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.orders) != 0 {
		t.Errorf("order not removed")
	}

	err = svc.Delete(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("deleting unknown order = %v, want ErrOrderNotFound", err)
	}

	if err := svc.Delete(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected error for malformed id")
	}
}
