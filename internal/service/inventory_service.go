package service

import (
	"context"
	"errors"
	"fmt"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"
	ws "fishshop-backend/internal/websocket"

	"github.com/shopspring/decimal"
)

// DTOs
type CreateInventoryRequest struct {
	Date            string  `json:"date" binding:"required"`
	SupplierName    string  `json:"supplier_name"`
	SupplierContact string  `json:"supplier_contact"`
	FishType        string  `json:"fish_type" binding:"required"`
	TransactionType string  `json:"transaction_type" binding:"required,oneof=IN OUT"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice       float64 `json:"unit_price" binding:"required,gt=0"`
}

// StockEvent is the websocket payload broadcast after any stock mutation.
type StockEvent struct {
	Event    string  `json:"event"`
	FishType string  `json:"fish_type,omitempty"`
	Quantity float64 `json:"quantity,omitempty"`
	LowStock bool    `json:"low_stock,omitempty"`
}

const (
	EventStockUpdated = "stock.updated"
	EventStockLow     = "stock.low"
	EventStockReset   = "stock.reset"
)

type InventoryService interface {
	Create(ctx context.Context, req CreateInventoryRequest) (*model.InventoryItem, error)
	List(ctx context.Context, transactionType string, limit int) ([]model.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	stockRepo     repository.StockRepository
	txManager     repository.TransactionManager
	hub           *ws.Hub
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	stockRepo repository.StockRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		stockRepo:     stockRepo,
		txManager:     txManager,
		hub:           hub,
	}
}

// Create records the movement and applies the signed quantity delta to the
// fish type's stock level in one transaction. IN adds, OUT subtracts.
func (s *inventoryService) Create(ctx context.Context, req CreateInventoryRequest) (*model.InventoryItem, error) {
	if _, err := normalizeDate(req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	unitPrice := decimal.NewFromFloat(req.UnitPrice)
	item := model.InventoryItem{
		Date:            req.Date,
		SupplierName:    req.SupplierName,
		SupplierContact: req.SupplierContact,
		FishType:        req.FishType,
		TransactionType: req.TransactionType,
		Quantity:        req.Quantity,
		UnitPrice:       unitPrice,
		TotalPrice:      decimal.NewFromFloat(req.Quantity).Mul(unitPrice).Round(2),
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.inventoryRepo.Create(txCtx, &item); err != nil {
			return fmt.Errorf("failed to save inventory entry: %w", err)
		}

		delta := req.Quantity
		if req.TransactionType == model.MovementOut {
			delta = -req.Quantity
		}
		if err := s.stockRepo.ApplyDelta(txCtx, req.FishType, delta); err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockChange(ctx, req.FishType)

	return &item, nil
}

func (s *inventoryService) List(ctx context.Context, transactionType string, limit int) ([]model.InventoryItem, error) {
	if transactionType != "" && transactionType != model.MovementIn && transactionType != model.MovementOut {
		return nil, errors.New("transaction type filter must be IN or OUT")
	}
	return s.inventoryRepo.List(ctx, transactionType, limit)
}

// broadcastStockChange emits the new level over the websocket hub, with a
// separate low-stock event when the level sits at or below its threshold.
// Broadcast failure never fails the mutation.
func (s *inventoryService) broadcastStockChange(ctx context.Context, fishType string) {
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
