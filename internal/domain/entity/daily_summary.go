package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NoTopItem is reported when no item was sold on the day.
const NoTopItem = "N/A"

// ReportIssue records a stored value the report could not use. Issues never
// fail a report; the affected value contributes nothing.
type ReportIssue struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// DailySummary is the sales summary for one day. It is derived from the
// stored sales on every request and never persisted.
type DailySummary struct {
	Date             string          `json:"date"`
	TotalSales       decimal.Decimal `json:"-"`
	TotalGST         decimal.Decimal `json:"-"`
	TransactionCount int             `json:"transaction_count"`
	TopItem          string          `json:"top_item"`
	Issues           []ReportIssue   `json:"issues,omitempty"`
}

// NewDailySummary returns the empty summary for date.
func NewDailySummary(date string) *DailySummary {
	return &DailySummary{
		Date:       date,
		TotalSales: decimal.Zero,
		TotalGST:   decimal.Zero,
		TopItem:    NoTopItem,
	}
}

// MarshalJSON renders money fields with two decimals
func (s DailySummary) MarshalJSON() ([]byte, error) {
	type Alias DailySummary
	return json.Marshal(&struct {
		Alias
		TotalSales string `json:"total_sales"`
		TotalGST   string `json:"total_gst"`
	}{
		Alias:      Alias(s),
		TotalSales: s.TotalSales.StringFixed(2),
		TotalGST:   s.TotalGST.StringFixed(2),
	})
}
