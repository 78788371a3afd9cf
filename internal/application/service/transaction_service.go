package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/internal/domain/enum"
	"github.com/sangkips/smartpos-api/internal/domain/repository"
	"github.com/sangkips/smartpos-api/pkg/apperror"
	"github.com/sangkips/smartpos-api/pkg/itemlist"
)

// TransactionService validates, prices and records sales
type TransactionService struct {
	repo     repository.TransactionRepository
	pricing  *PricingService
	menu     *MenuService
	payments enum.PaymentMethods
	now      func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	repo repository.TransactionRepository,
	pricing *PricingService,
	menu *MenuService,
	payments enum.PaymentMethods,
) *TransactionService {
	return &TransactionService{
		repo:     repo,
		pricing:  pricing,
		menu:     menu,
		payments: payments,
		now:      time.Now,
	}
}

// SetClock replaces the time source used to stamp sales
func (s *TransactionService) SetClock(now func() time.Time) {
	s.now = now
}

// PaymentMethods returns the accepted payment methods
func (s *TransactionService) PaymentMethods() enum.PaymentMethods {
	return s.payments
}

// Sale is a recorded transaction together with its priced items
type Sale struct {
	Record entity.TransactionRecord `json:"record"`
	Items  []entity.OrderItem       `json:"items"`
	Totals entity.Totals            `json:"totals"`
}

// Quote is a priced order that has not been recorded
type Quote struct {
	Items  []entity.OrderItem `json:"items"`
	Totals entity.Totals      `json:"totals"`
}

// CheckoutInput represents a sale as entered at the counter
type CheckoutInput struct {
	CustomerName  string
	PaymentMethod string
	Lines         []itemlist.Line
}

// SaveTransaction records one sale and returns its totals.
// The row is stamped with the current local time.
func (s *TransactionService) SaveTransaction(ctx context.Context, customerName string, items []entity.OrderItem, paymentMethod string) (entity.Totals, error) {
	sale, err := s.save(ctx, customerName, items, paymentMethod)
	if err != nil {
		return entity.Totals{}, err
	}
	return sale.Totals, nil
}

// Quote prices menu lines without recording anything
func (s *TransactionService) Quote(lines []itemlist.Line) (*Quote, error) {
	items, err := s.menu.BuildOrder(lines)
	if err != nil {
		return nil, err
	}
	return &Quote{Items: items, Totals: s.pricing.CalculateTotals(items)}, nil
}

// Checkout resolves menu lines to priced items and records the sale
func (s *TransactionService) Checkout(ctx context.Context, input *CheckoutInput) (*Sale, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewInvalidOrderError("Customer name is required")
	}

	items, err := s.menu.BuildOrder(input.Lines)
	if err != nil {
		return nil, err
	}

	return s.save(ctx, input.CustomerName, items, input.PaymentMethod)
}

func (s *TransactionService) save(ctx context.Context, customerName string, items []entity.OrderItem, paymentMethod string) (*Sale, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, apperror.NewInvalidOrderError("Customer name is required")
	}
	// Line breaks would not survive the CSV writer byte for byte.
	if strings.ContainsFunc(customerName, unicode.IsControl) {
		return nil, apperror.NewInvalidOrderError("Customer name cannot contain control characters")
	}
	if len(items) == 0 {
		return nil, apperror.NewInvalidOrderError("Order has no items")
	}
	for _, it := range items {
		if _, err := ValidateQuantity(it.Quantity); err != nil {
			return nil, apperror.NewInvalidOrderError(fmt.Sprintf("Quantity for %q must be a positive integer", it.Name))
		}
		if it.UnitPrice.IsNegative() {
			return nil, apperror.NewInvalidOrderError(fmt.Sprintf("Unit price for %q cannot be negative", it.Name))
		}
	}

	method, ok := s.payments.Resolve(paymentMethod)
	if !ok {
		return nil, apperror.NewInvalidOrderError(fmt.Sprintf(
			"Unsupported payment method %q, expected one of: %s",
			paymentMethod, strings.Join(s.payments.Strings(), ", "),
		))
	}

	totals := s.pricing.CalculateTotals(items)

	lines := make([]itemlist.Line, len(items))
	for i, it := range items {
		lines[i] = itemlist.Line{Name: it.Name, Quantity: it.Quantity}
	}

	record := entity.NewTransactionRecord(customerName, itemlist.Encode(lines), totals, method.String(), s.now())
	if err := s.repo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	log.Printf("Sale recorded: customer=%q items=%q total=%s payment=%s",
		record.CustomerName, record.OrderedItems, record.FinalTotal, record.PaymentMethod)

	return &Sale{Record: record, Items: items, Totals: totals}, nil
}
