package service

import (
	"context"
	"errors"
	"fmt"

	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// DTOs
type CreateAdvanceOrderRequest struct {
	Date     string  `json:"date" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	FishType string  `json:"fish_type" binding:"required"`
	Advance  float64 `json:"advance" binding:"min=0"`
	Name     string  `json:"name" binding:"required"`
	Contact  string  `json:"contact"`
}

type AdvanceOrderService interface {
	Create(ctx context.Context, req CreateAdvanceOrderRequest) (*model.AdvanceOrder, error)
	List(ctx context.Context, date string) ([]model.AdvanceOrder, error)
	Delete(ctx context.Context, id string) error
}

type advanceOrderService struct {
	repo repository.AdvanceOrderRepository
}

func NewAdvanceOrderService(repo repository.AdvanceOrderRepository) AdvanceOrderService {
	return &advanceOrderService{repo: repo}
}

func (s *advanceOrderService) Create(ctx context.Context, req CreateAdvanceOrderRequest) (*model.AdvanceOrder, error) {
	if _, err := normalizeDate(req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	if req.Advance > req.Amount {
		return nil, errors.New("advance cannot exceed the order amount")
	}

	order := model.AdvanceOrder{
		Date:     req.Date,
		Amount:   decimal.NewFromFloat(req.Amount).Round(2),
		FishType: req.FishType,
		Advance:  decimal.NewFromFloat(req.Advance).Round(2),
		Name:     req.Name,
		Contact:  req.Contact,
	}
	if err := s.repo.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to save advance order: %w", err)
	}
	return &order, nil
}

func (s *advanceOrderService) List(ctx context.Context, date string) ([]model.AdvanceOrder, error) {
	if date != "" {
		if _, err := normalizeDate(date); err != nil {
			return nil, fmt.Errorf("invalid date filter %q: %w", date, err)
		}
	}
	return s.repo.List(ctx, date)
}

func (s *advanceOrderService) Delete(ctx context.Context, id string) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	if _, err := s.repo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.repo.Delete(ctx, orderID)
}
