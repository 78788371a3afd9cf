package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	infraRepo "github.com/sangkips/smartpos-api/internal/infrastructure/repository"
	"github.com/sangkips/smartpos-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(dateTime, items, gst, finalTotal string) entity.TransactionRecord {
	return entity.TransactionRecord{
		CustomerName:  "Customer",
		OrderedItems:  items,
		GST:           gst,
		FinalTotal:    finalTotal,
		PaymentMethod: "Cash",
		DateTime:      dateTime,
	}
}

func newReportService(records ...entity.TransactionRecord) *ReportService {
	svc := NewReportService(&memoryTransactionRepo{records: records}, "₹")
	svc.SetClock(func() time.Time { return fixedNow })
	return svc
}

func TestComputeDailySummary_EmptyStore(t *testing.T) {
	svc := NewReportService(infraRepo.NewTransactionRepository(filepath.Join(t.TempDir(), "sales.csv")), "₹")
	svc.SetClock(func() time.Time { return fixedNow })

	summary, err := svc.ComputeDailySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", summary.Date)
	assert.Equal(t, "0.00", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "0.00", summary.TotalGST.StringFixed(2))
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Equal(t, entity.NoTopItem, summary.TopItem)
	assert.Empty(t, summary.Issues)
}

func TestComputeDailySummary_MalformedFieldIsSkipped(t *testing.T) {
	svc := newReportService(
		record("2026-10-19 09:00:00", "Latte x2; Vada pav x1", "13.50", "283.50"),
		record("2026-10-19 10:00:00", "Samosa x4", "abc", "100.00"),
		record("2026-10-19 11:00:00", "Masala Tea x1", "2.38", "50.00"),
	)

	summary, err := svc.ComputeDailySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "433.50", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "15.88", summary.TotalGST.StringFixed(2))
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, "Samosa", summary.TopItem)

	require.Len(t, summary.Issues, 1)
	assert.Equal(t, entity.ReportIssue{Line: 3, Field: entity.ColumnGST, Value: "abc", Reason: "not a number"}, summary.Issues[0])
}

func TestComputeDailySummary_FiltersByDate(t *testing.T) {
	svc := newReportService(
		record("2026-10-18 23:59:59", "Espresso x9", "5.00", "105.00"),
		record("2026-10-19 00:00:01", "Latte x1", "6.00", "126.00"),
		record("garbage", "Espresso x9", "5.00", "105.00"),
		record("", "Espresso x9", "5.00", "105.00"),
	)

	summary, err := svc.ComputeDailySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TransactionCount)
	assert.Equal(t, "126.00", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "Latte", summary.TopItem)
}

func TestComputeDailySummary_TieGoesToFirstTallied(t *testing.T) {
	svc := newReportService(
		record("2026-10-19 09:00:00", "Latte x1; Vada pav x3", "", ""),
		record("2026-10-19 10:00:00", "Latte x2", "", ""),
	)

	summary, err := svc.ComputeDailySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Latte", summary.TopItem)
	assert.Equal(t, "0.00", summary.TotalSales.StringFixed(2))
	assert.Empty(t, summary.Issues)
}

func TestComputeDailySummary_ItemIssuesAreReported(t *testing.T) {
	svc := newReportService(record("2026-10-19 09:00:00", "Samosa xabc; Latte x1", "1.00", "21.00"))

	summary, err := svc.ComputeDailySummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.Issues, 1)
	assert.Equal(t, entity.ColumnOrderedItems, summary.Issues[0].Field)
	assert.Equal(t, "Samosa xabc", summary.Issues[0].Value)
	assert.Equal(t, "Samosa", summary.TopItem)
}

func TestComputeDailySummary_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := infraRepo.NewTransactionRepository(path)
	txSvc := newTransactionService(t, repo)
	ctx := context.Background()

	_, err := txSvc.SaveTransaction(ctx, "Asha", []entity.OrderItem{item("Latte", 2, "120.00"), item("Vada pav", 1, "30.00")}, "Cash")
	require.NoError(t, err)
	_, err = txSvc.SaveTransaction(ctx, "Ravi", []entity.OrderItem{item("Vada pav", 2, "30.00")}, "UPI")
	require.NoError(t, err)

	svc := NewReportService(repo, "₹")
	svc.SetClock(func() time.Time { return fixedNow })

	summary, err := svc.ComputeDailySummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, "346.50", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "16.50", summary.TotalGST.StringFixed(2))
	assert.Equal(t, "Vada pav", summary.TopItem)
}

func TestListTodayTransactions(t *testing.T) {
	svc := newReportService(
		record("2026-10-18 12:00:00", "Latte x1", "", ""),
		record("2026-10-19 09:00:00", "Latte x1", "", ""),
		record("2026-10-19 10:00:00", "Samosa x1", "", ""),
		record("2026-10-19 11:00:00", "Espresso x1", "", ""),
	)

	page, err := svc.ListTodayTransactions(context.Background(), &pagination.PaginationParams{Page: 1, PerPage: 2})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "2026-10-19 09:00:00", page.Items[0].DateTime)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.True(t, page.Pagination.HasNext)
}

func TestRenderDailyReport(t *testing.T) {
	svc := newReportService()
	summary := entity.NewDailySummary("2026-10-19")
	summary.TransactionCount = 2

	want := "==== DAILY SALES REPORT ====\n" +
		"Date: 2026-10-19\n" +
		"Number of transactions: 2\n" +
		"Total sales (₹): 0.00\n" +
		"Total GST collected (₹): 0.00\n" +
		"Most sold item: N/A\n" +
		"============================\n"
	assert.Equal(t, want, svc.RenderDailyReport(summary))
}
