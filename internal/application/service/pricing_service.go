package service

import (
	"fmt"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// PricingService computes order totals
type PricingService struct {
	taxRate decimal.Decimal
}

// NewPricingService creates a pricing service for the given GST rate (0.05 = 5%)
func NewPricingService(taxRate decimal.Decimal) *PricingService {
	return &PricingService{taxRate: taxRate}
}

// TaxRate returns the configured GST rate
func (s *PricingService) TaxRate() decimal.Decimal {
	return s.taxRate
}

// CalculateTotals returns subtotal, GST and final total for the items.
// Each stage is rounded to two places, half away from zero, before the next
// is computed. An empty order totals 0.00 everywhere.
func (s *PricingService) CalculateTotals(items []entity.OrderItem) entity.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	subtotal = subtotal.Round(2)

	gst := subtotal.Mul(s.taxRate).Round(2)

	return entity.Totals{
		Subtotal:   subtotal,
		GST:        gst,
		FinalTotal: subtotal.Add(gst).Round(2),
	}
}

// ValidateQuantity returns q when it is a positive quantity
func ValidateQuantity(q int) (int, error) {
	if q <= 0 {
		return 0, apperror.NewInvalidOrderError(fmt.Sprintf("Quantity must be a positive integer, got %d", q))
	}
	return q, nil
}
