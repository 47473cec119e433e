package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"
	ws "fishshop-backend/internal/websocket"
)

// IsLowStock reports whether a quantity sits at or below its minimum level.
// The boundary is inclusive: a quantity equal to the threshold is low.
func IsLowStock(quantity, minLevel float64) bool {
	if minLevel <= 0 {
		minLevel = model.DefaultMinStockLevel
	}
	return quantity <= minLevel
}

func broadcastStockEvent(hub *ws.Hub, event string, level *model.StockLevel) {
	payload, _ := json.Marshal(StockEvent{
		Event:    event,
		FishType: level.FishType,
		Quantity: level.CurrentQuantity,
		LowStock: IsLowStock(level.CurrentQuantity, level.MinStockLevel),
	})
	hub.Broadcast <- payload
}

// StockLevelResponse augments a stock row with the computed low-stock flag.
type StockLevelResponse struct {
	FishType      string  `json:"fish_type"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	MinStockLevel float64 `json:"min_stock_level"`
	LowStock      bool    `json:"low_stock"`
	LastUpdated   string  `json:"last_updated"`
}

type StockService interface {
	List(ctx context.Context) ([]StockLevelResponse, error)
	Reset(ctx context.Context) error
	FishTypes(ctx context.Context) ([]string, error)
	FishItems(ctx context.Context) ([]model.FishItem, error)
}

type stockService struct {
	stockRepo    repository.StockRepository
	fishItemRepo repository.FishItemRepository
	hub          *ws.Hub
}

func NewStockService(stockRepo repository.StockRepository, fishItemRepo repository.FishItemRepository, hub *ws.Hub) StockService {
	return &stockService{stockRepo: stockRepo, fishItemRepo: fishItemRepo, hub: hub}
}

func (s *stockService) List(ctx context.Context) ([]StockLevelResponse, error) {
	levels, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		res = append(res, StockLevelResponse{
			FishType:      l.FishType,
			Quantity:      l.CurrentQuantity,
			Unit:          l.Unit,
			MinStockLevel: l.MinStockLevel,
			LowStock:      IsLowStock(l.CurrentQuantity, l.MinStockLevel),
			LastUpdated:   l.LastUpdated.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return res, nil
}

// Reset zeroes every stock level. Destructive; the interactive confirmation
// lives in the client, the contract here is the reset itself.
func (s *stockService) Reset(ctx context.Context) error {
	if err := s.stockRepo.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset stock: %w", err)
	}

	if s.hub != nil {
		payload, _ := json.Marshal(StockEvent{Event: EventStockReset})
		s.hub.Broadcast <- payload
	}
	return nil
}

func (s *stockService) FishTypes(ctx context.Context) ([]string, error) {
	return s.stockRepo.FishTypes(ctx)
}

func (s *stockService) FishItems(ctx context.Context) ([]model.FishItem, error) {
	return s.fishItemRepo.List(ctx)
}
