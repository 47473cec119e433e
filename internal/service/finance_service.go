package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fishshop-backend/internal/finance"
	"fishshop-backend/internal/model"
	"fishshop-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrInvalidReceipt  = errors.New("receipt must be a png, jpg, jpeg or gif image")
)

// recentTransactionsLimit caps the unfiltered transaction listing.
const recentTransactionsLimit = 100

// Receipt carries an uploaded attachment through to storage.
type Receipt struct {
	Data        []byte
	Filename    string
	ContentType string
}

// DTOs
type CreateTransactionRequest struct {
	TransactionType string
	PaymentMethod   string
	Amount          float64
	ClientName      string
	ClientPhone     string
	Notes           string
	Receipt         *Receipt
}

type TransactionSummary struct {
	Date         string                       `json:"date"`
	DateSummary  finance.Tally                `json:"date_summary"`
	TotalSummary finance.Tally                `json:"total_summary"`
	Transactions []model.FinancialTransaction `json:"transactions"`
}

type FinanceService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (*model.FinancialTransaction, error)
	List(ctx context.Context) ([]model.FinancialTransaction, error)
	Search(ctx context.Context, startDate, endDate string) ([]model.FinancialTransaction, error)
	Summary(ctx context.Context, date string) (*TransactionSummary, error)
	GetReceipt(ctx context.Context, id string) (*model.FinancialTransaction, error)
}

type financeService struct {
	repo repository.TransactionRepository
}

func NewFinanceService(repo repository.TransactionRepository) FinanceService {
	return &financeService{repo: repo}
}

var allowedReceiptExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

func validateReceipt(r *Receipt) error {
	if len(r.Data) == 0 {
		return ErrInvalidReceipt
	}
	ext := strings.ToLower(filepath.Ext(r.Filename))
	if !allowedReceiptExts[ext] || !strings.HasPrefix(r.ContentType, "image/") {
		return ErrInvalidReceipt
	}
	return nil
}

func (s *financeService) Create(ctx context.Context, req CreateTransactionRequest) (*model.FinancialTransaction, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be a positive number")
	}
	if req.TransactionType != model.FinanceIn && req.TransactionType != model.FinanceOut {
		return nil, errors.New("transaction type must be in or out")
	}
	if req.PaymentMethod != model.PaymentCash && req.PaymentMethod != model.PaymentOnline {
		return nil, errors.New("payment method must be cash or online")
	}
	if req.ClientName == "" {
		return nil, errors.New("client name is required")
	}

	tx := model.FinancialTransaction{
		TransactionType: req.TransactionType,
		PaymentMethod:   req.PaymentMethod,
		Amount:          decimal.NewFromFloat(req.Amount).Round(2),
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		Notes:           req.Notes,
	}

	if req.Receipt != nil {
		if err := validateReceipt(req.Receipt); err != nil {
			return nil, err
		}
		tx.ImageData = req.Receipt.Data
		tx.ImageName = filepath.Base(req.Receipt.Filename)
		tx.ImageType = req.Receipt.ContentType
	}

	if err := s.repo.Create(ctx, &tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	// Do not echo receipt bytes back to the caller.
	tx.ImageData = nil
	return &tx, nil
}

func (s *financeService) List(ctx context.Context) ([]model.FinancialTransaction, error) {
	return s.repo.List(ctx, recentTransactionsLimit)
}

// Search queries by inclusive calendar-date range; at least one bound is
// required.
func (s *financeService) Search(ctx context.Context, startDate, endDate string) ([]model.FinancialTransaction, error) {
	if startDate == "" && endDate == "" {
		return nil, errors.New("a start date or end date is required")
	}

	var start, end *time.Time
	if startDate != "" {
		t, err := finance.NormalizeDate(startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		start = &t
	}
	if endDate != "" {
		t, err := finance.NormalizeDate(endDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		end = &t
	}

	return s.repo.SearchByDateRange(ctx, start, end)
}

// Summary produces the per-date and overall tallies side by side, plus the
// selected date's transactions.
func (s *financeService) Summary(ctx context.Context, date string) (*TransactionSummary, error) {
	if date == "" {
		return nil, errors.New("date parameter is required")
	}
	day, err := finance.NormalizeDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	all, err := s.repo.SearchByDateRange(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	dateSummary, totalSummary := finance.Summarize(all, day)

	dayTxs := make([]model.FinancialTransaction, 0)
	for _, tx := range all {
		ty, tm, td := tx.CreatedAt.Date()
		y, m, d := day.Date()
		if ty == y && tm == m && td == d {
			dayTxs = append(dayTxs, tx)
		}
	}

	return &TransactionSummary{
		Date:         date,
		DateSummary:  dateSummary,
		TotalSummary: totalSummary,
		Transactions: dayTxs,
	}, nil
}

func (s *financeService) GetReceipt(ctx context.Context, id string) (*model.FinancialTransaction, error) {
	txID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction id: %w", err)
	}

	tx, err := s.repo.FindReceipt(ctx, txID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if len(tx.ImageData) == 0 {
		return nil, ErrReceiptNotFound
	}
	return tx, nil
}
