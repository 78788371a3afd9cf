package entity

import (
	"strings"
	"time"
)

// DateTimeLayout is the layout of the DateTime column.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout is the date prefix of DateTimeLayout.
const DateLayout = "2006-01-02"

// Column names of the sales file, in file order.
const (
	ColumnCustomerName  = "CustomerName"
	ColumnOrderedItems  = "OrderedItems"
	ColumnSubtotal      = "Subtotal"
	ColumnGST           = "GST"
	ColumnFinalTotal    = "FinalTotal"
	ColumnPaymentMethod = "PaymentMethod"
	ColumnDateTime      = "DateTime"
)

// TransactionColumns is the header row of the sales file.
var TransactionColumns = []string{
	ColumnCustomerName,
	ColumnOrderedItems,
	ColumnSubtotal,
	ColumnGST,
	ColumnFinalTotal,
	ColumnPaymentMethod,
	ColumnDateTime,
}

// TransactionRecord is one stored sale exactly as it appears in the file.
// Fields stay as text: rows written by older tools are read back without
// being rejected, and numeric columns are parsed by whoever needs them.
type TransactionRecord struct {
	CustomerName  string `json:"customer_name"`
	OrderedItems  string `json:"ordered_items"`
	Subtotal      string `json:"subtotal"`
	GST           string `json:"gst"`
	FinalTotal    string `json:"final_total"`
	PaymentMethod string `json:"payment_method"`
	DateTime      string `json:"date_time"`
}

// NewTransactionRecord builds the record for a finalized order.
func NewTransactionRecord(customerName, orderedItems string, totals Totals, paymentMethod string, at time.Time) TransactionRecord {
	return TransactionRecord{
		CustomerName:  strings.TrimSpace(customerName),
		OrderedItems:  orderedItems,
		Subtotal:      totals.Subtotal.StringFixed(2),
		GST:           totals.GST.StringFixed(2),
		FinalTotal:    totals.FinalTotal.StringFixed(2),
		PaymentMethod: strings.TrimSpace(paymentMethod),
		DateTime:      at.Format(DateTimeLayout),
	}
}

// Row returns the record's fields in column order.
func (r TransactionRecord) Row() []string {
	return []string{
		r.CustomerName,
		r.OrderedItems,
		r.Subtotal,
		r.GST,
		r.FinalTotal,
		r.PaymentMethod,
		r.DateTime,
	}
}

// Field returns the value of the named column, or "" for an unknown column.
func (r TransactionRecord) Field(column string) string {
	switch column {
	case ColumnCustomerName:
		return r.CustomerName
	case ColumnOrderedItems:
		return r.OrderedItems
	case ColumnSubtotal:
		return r.Subtotal
	case ColumnGST:
		return r.GST
	case ColumnFinalTotal:
		return r.FinalTotal
	case ColumnPaymentMethod:
		return r.PaymentMethod
	case ColumnDateTime:
		return r.DateTime
	}
	return ""
}

// SetField assigns the named column. Unknown columns are ignored.
func (r *TransactionRecord) SetField(column, value string) {
	switch column {
	case ColumnCustomerName:
		r.CustomerName = value
	case ColumnOrderedItems:
		r.OrderedItems = value
	case ColumnSubtotal:
		r.Subtotal = value
	case ColumnGST:
		r.GST = value
	case ColumnFinalTotal:
		r.FinalTotal = value
	case ColumnPaymentMethod:
		r.PaymentMethod = value
	case ColumnDateTime:
		r.DateTime = value
	}
}

// OnDate reports whether the record's DateTime starts with the given
// YYYY-MM-DD date. Malformed timestamps never match.
func (r TransactionRecord) OnDate(date string) bool {
	return date != "" && strings.HasPrefix(r.DateTime, date)
}
