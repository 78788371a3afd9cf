package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/internal/domain/repository"
	"github.com/sangkips/smartpos-api/pkg/itemlist"
	"github.com/sangkips/smartpos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReportService aggregates stored sales into daily reports
type ReportService struct {
	repo     repository.TransactionRepository
	currency string
	now      func() time.Time
}

// NewReportService creates a new report service
func NewReportService(repo repository.TransactionRepository, currency string) *ReportService {
	return &ReportService{
		repo:     repo,
		currency: currency,
		now:      time.Now,
	}
}

// SetClock replaces the time source that decides what "today" is
func (s *ReportService) SetClock(now func() time.Time) {
	s.now = now
}

// Today returns the current local date as YYYY-MM-DD
func (s *ReportService) Today() string {
	return s.now().Format(entity.DateLayout)
}

// ComputeDailySummary summarizes the sales whose timestamp falls on today's
// local date.
//
// Amounts that do not parse are skipped and listed in the summary's Issues;
// an empty amount counts as zero. The top item is the one with the highest
// total quantity, ties going to the item seen first.
func (s *ReportService) ComputeDailySummary(ctx context.Context) (*entity.DailySummary, error) {
	date := s.Today()
	summary := entity.NewDailySummary(date)
	tally := itemlist.NewTally()
	totalSales := decimal.Zero
	totalGST := decimal.Zero

	err := s.repo.Scan(ctx, func(line int, rec entity.TransactionRecord) error {
		if !rec.OnDate(date) {
			return nil
		}
		summary.TransactionCount++

		if amount, ok := s.parseAmount(summary, line, entity.ColumnFinalTotal, rec.FinalTotal); ok {
			totalSales = totalSales.Add(amount)
		}
		if amount, ok := s.parseAmount(summary, line, entity.ColumnGST, rec.GST); ok {
			totalGST = totalGST.Add(amount)
		}

		decoded := itemlist.Decode(rec.OrderedItems)
		for _, issue := range decoded.Issues {
			summary.Issues = append(summary.Issues, entity.ReportIssue{
				Line:   line,
				Field:  entity.ColumnOrderedItems,
				Value:  issue.Segment,
				Reason: issue.Reason,
			})
		}
		tally.Merge(decoded.Tally)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sales: %w", err)
	}

	summary.TotalSales = totalSales.Round(2)
	summary.TotalGST = totalGST.Round(2)
	if name, _, ok := tally.Top(); ok {
		summary.TopItem = name
	}

	for _, issue := range summary.Issues {
		log.Printf("Report %s: line %d %s %q skipped: %s", date, issue.Line, issue.Field, issue.Value, issue.Reason)
	}

	return summary, nil
}

func (s *ReportService) parseAmount(summary *entity.DailySummary, line int, field, value string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, true
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		summary.Issues = append(summary.Issues, entity.ReportIssue{
			Line:   line,
			Field:  field,
			Value:  value,
			Reason: "not a number",
		})
		return decimal.Zero, false
	}
	return amount, true
}

// ListTodayTransactions returns today's stored sales, oldest first, one page at a time
func (s *ReportService) ListTodayTransactions(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.TransactionRecord], error) {
	today := s.Today()

	var records []entity.TransactionRecord
	err := s.repo.Scan(ctx, func(_ int, rec entity.TransactionRecord) error {
		if rec.OnDate(today) {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sales: %w", err)
	}

	return pagination.Paginate(records, params), nil
}

// RenderDailyReport formats a summary the way the counter's admin console prints it
func (s *ReportService) RenderDailyReport(summary *entity.DailySummary) string {
	var b strings.Builder
	b.WriteString("==== DAILY SALES REPORT ====\n")
	fmt.Fprintf(&b, "Date: %s\n", summary.Date)
	fmt.Fprintf(&b, "Number of transactions: %d\n", summary.TransactionCount)
	fmt.Fprintf(&b, "Total sales (%s): %s\n", s.currency, summary.TotalSales.StringFixed(2))
	fmt.Fprintf(&b, "Total GST collected (%s): %s\n", s.currency, summary.TotalGST.StringFixed(2))
	fmt.Fprintf(&b, "Most sold item: %s\n", summary.TopItem)
	b.WriteString("============================\n")
	return b.String()
}
