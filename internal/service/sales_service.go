package service

import (
	"context"
	"fmt"
	"time"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"
	ws "fishshop-backend/internal/websocket"

	"github.com/shopspring/decimal"
)

// normalizeDate validates a calendar-date string before it reaches a query
// or a stored row.
func normalizeDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// DTOs
type CreateSaleRequest struct {
	Date             string  `json:"date" binding:"required"`
	PurchaserName    string  `json:"purchaser_name" binding:"required"`
	PurchaserContact string  `json:"purchaser_contact"`
	FishType         string  `json:"fish_type" binding:"required"`
	Quantity         float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice        float64 `json:"unit_price" binding:"required,gt=0"`
}

type SaleResponse struct {
	Sale           model.SaleRecord `json:"sale"`
	RemainingStock float64          `json:"remaining_stock"`
}

type SalesService interface {
	Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error)
	List(ctx context.Context, limit int) ([]model.SaleRecord, error)
}

type salesService struct {
	saleRepo  repository.SaleRepository
	stockRepo repository.StockRepository
	txManager repository.TransactionManager
	hub       *ws.Hub
}

func NewSalesService(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) SalesService {
	return &salesService{
		saleRepo:  saleRepo,
		stockRepo: stockRepo,
		txManager: txManager,
		hub:       hub,
	}
}

// Create refuses the sale unless enough stock is on hand, then records it
// and deducts the quantity under a row lock so concurrent sales of the same
// fish type cannot oversell.
func (s *salesService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if _, err := normalizeDate(req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	unitPrice := decimal.NewFromFloat(req.UnitPrice)
	sale := model.SaleRecord{
		Date:             req.Date,
		PurchaserName:    req.PurchaserName,
		PurchaserContact: req.PurchaserContact,
		FishType:         req.FishType,
		TransactionType:  model.MovementOut,
		Quantity:         req.Quantity,
		UnitPrice:        unitPrice,
		TotalPrice:       decimal.NewFromFloat(req.Quantity).Mul(unitPrice).Round(2),
	}

	var remaining float64
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		level, err := s.stockRepo.FindByFishTypeForUpdate(txCtx, req.FishType)
		if err != nil || level.CurrentQuantity < req.Quantity {
			available := 0.0
			if level != nil {
				available = level.CurrentQuantity
			}
			return fmt.Errorf("insufficient stock. Available: %g", available)
		}

		if err := s.saleRepo.Create(txCtx, &sale); err != nil {
			return fmt.Errorf("failed to record sale: %w", err)
		}

		if err := s.stockRepo.ApplyDelta(txCtx, req.FishType, -req.Quantity); err != nil {
			return fmt.Errorf("failed to deduct stock: %w", err)
		}

		remaining = level.CurrentQuantity - req.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastSaleStock(ctx, req.FishType)

	return &SaleResponse{Sale: sale, RemainingStock: remaining}, nil
}

func (s *salesService) List(ctx context.Context, limit int) ([]model.SaleRecord, error) {
	return s.saleRepo.List(ctx, limit)
}

func (s *salesService) broadcastSaleStock(ctx context.Context, fishType string) {
	if s.hub == nil {
		return
	}
	level, err := s.stockRepo.FindByFishType(ctx, fishType)
	if err != nil {
		return
	}
	broadcastStockEvent(s.hub, EventStockUpdated, level)
	if IsLowStock(level.CurrentQuantity, level.MinStockLevel) {
		broadcastStockEvent(s.hub, EventStockLow, level)
	}
}
