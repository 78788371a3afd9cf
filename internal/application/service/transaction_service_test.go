package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/internal/domain/enum"
	"github.com/sangkips/smartpos-api/internal/domain/repository"
	infraRepo "github.com/sangkips/smartpos-api/internal/infrastructure/repository"
	"github.com/sangkips/smartpos-api/pkg/apperror"
	"github.com/sangkips/smartpos-api/pkg/itemlist"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 14, 30, 5, 0, time.Local)

// memoryTransactionRepo keeps appended records in memory
type memoryTransactionRepo struct {
	records   []entity.TransactionRecord
	appendErr error
}

func (r *memoryTransactionRepo) Append(_ context.Context, record entity.TransactionRecord) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.records = append(r.records, record)
	return nil
}

func (r *memoryTransactionRepo) Scan(ctx context.Context, visit repository.TransactionVisitor) error {
	for i, rec := range r.records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := visit(i+2, rec); err != nil {
			return err
		}
	}
	return nil
}

func newTransactionService(t *testing.T, repo repository.TransactionRepository) *TransactionService {
	t.Helper()
	svc := NewTransactionService(
		repo,
		NewPricingService(decimal.RequireFromString("0.05")),
		newDefaultMenuService(t),
		enum.ParsePaymentMethods([]string{"Cash", "Card", "UPI"}),
	)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc
}

func TestSaveTransaction_WritesRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	svc := newTransactionService(t, infraRepo.NewTransactionRepository(path))

	totals, err := svc.SaveTransaction(context.Background(), "Asha",
		[]entity.OrderItem{item("Latte", 2, "120.00"), item("Vada pav", 1, "30.00")}, "Cash")
	require.NoError(t, err)

	assert.Equal(t, "270.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "13.50", totals.GST.StringFixed(2))
	assert.Equal(t, "283.50", totals.FinalTotal.StringFixed(2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"CustomerName,OrderedItems,Subtotal,GST,FinalTotal,PaymentMethod,DateTime\r\n"+
			"Asha,Latte x2; Vada pav x1,270.00,13.50,283.50,Cash,2026-10-19 14:30:05\r\n",
		string(data))
}

func TestSaveTransaction_Rejects(t *testing.T) {
	valid := []entity.OrderItem{item("Latte", 1, "120.00")}

	tests := []struct {
		name     string
		customer string
		items    []entity.OrderItem
		method   string
	}{
		{name: "empty customer", customer: "", items: valid, method: "Cash"},
		{name: "blank customer", customer: "   ", items: valid, method: "Cash"},
		{name: "newline in customer", customer: "Asha\nRao", items: valid, method: "Cash"},
		{name: "carriage return in customer", customer: "Asha\r", items: valid, method: "Cash"},
		{name: "tab in customer", customer: "Asha\tRao", items: valid, method: "Cash"},
		{name: "no items", customer: "Asha", items: nil, method: "Cash"},
		{name: "zero quantity", customer: "Asha", items: []entity.OrderItem{item("Latte", 0, "120.00")}, method: "Cash"},
		{name: "negative price", customer: "Asha", items: []entity.OrderItem{item("Latte", 1, "-1.00")}, method: "Cash"},
		{name: "unknown payment method", customer: "Asha", items: valid, method: "Cheque"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryTransactionRepo{}
			svc := newTransactionService(t, repo)

			_, err := svc.SaveTransaction(context.Background(), tt.customer, tt.items, tt.method)

			require.Error(t, err)
			assert.True(t, apperror.IsInvalidOrder(err))
			assert.Empty(t, repo.records)
		})
	}
}

func TestSaveTransaction_NormalizesInput(t *testing.T) {
	repo := &memoryTransactionRepo{}
	svc := newTransactionService(t, repo)

	_, err := svc.SaveTransaction(context.Background(), "  Ravi ", []entity.OrderItem{item("Samosa", 3, "25.00")}, "upi")
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	assert.Equal(t, "Ravi", repo.records[0].CustomerName)
	assert.Equal(t, "UPI", repo.records[0].PaymentMethod)
	assert.Equal(t, "Samosa x3", repo.records[0].OrderedItems)
	assert.Equal(t, "2026-10-19 14:30:05", repo.records[0].DateTime)
}

func TestSaveTransaction_DuplicateItemsStaySeparate(t *testing.T) {
	repo := &memoryTransactionRepo{}
	svc := newTransactionService(t, repo)

	_, err := svc.SaveTransaction(context.Background(), "Asha",
		[]entity.OrderItem{item("Latte", 1, "120.00"), item("Latte", 2, "120.00")}, "Card")
	require.NoError(t, err)

	assert.Equal(t, "Latte x1; Latte x2", repo.records[0].OrderedItems)
	assert.Equal(t, "360.00", repo.records[0].Subtotal)
}

func TestSaveTransaction_StoreFailure(t *testing.T) {
	repo := &memoryTransactionRepo{appendErr: errors.New("disk full")}
	svc := newTransactionService(t, repo)

	_, err := svc.SaveTransaction(context.Background(), "Asha", []entity.OrderItem{item("Latte", 1, "120.00")}, "Cash")

	require.Error(t, err)
	assert.False(t, apperror.IsInvalidOrder(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestCheckout(t *testing.T) {
	repo := &memoryTransactionRepo{}
	svc := newTransactionService(t, repo)

	sale, err := svc.Checkout(context.Background(), &CheckoutInput{
		CustomerName:  "Meera",
		PaymentMethod: "Card",
		Lines:         []itemlist.Line{{Name: "Cappuccino", Quantity: 1}, {Name: "Chocolate Donut", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "250.00", sale.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "12.50", sale.Totals.GST.StringFixed(2))
	assert.Equal(t, "262.50", sale.Totals.FinalTotal.StringFixed(2))
	assert.Equal(t, "Cappuccino x1; Chocolate Donut x2", sale.Record.OrderedItems)
	require.Len(t, repo.records, 1)
}

func TestCheckout_RejectsBeforeMenuLookup(t *testing.T) {
	svc := newTransactionService(t, &memoryTransactionRepo{})

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		CustomerName:  "",
		PaymentMethod: "Cash",
		Lines:         []itemlist.Line{{Name: "Pizza", Quantity: 1}},
	})

	require.Error(t, err)
	assert.Equal(t, "Customer name is required", err.Error())
}

func TestQuote(t *testing.T) {
	repo := &memoryTransactionRepo{}
	svc := newTransactionService(t, repo)

	quote, err := svc.Quote([]itemlist.Line{{Name: "Latte", Quantity: 2}, {Name: "Vada pav", Quantity: 1}})
	require.NoError(t, err)

	assert.Equal(t, "283.50", quote.Totals.FinalTotal.StringFixed(2))
	assert.Len(t, quote.Items, 2)
	assert.Empty(t, repo.records)
}
