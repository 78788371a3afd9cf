package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// Receipt is a value object representing a printable bill.
// It is composed from a saved sale at print time and never stored.
type Receipt struct {
	Header      ReceiptHeader   `json:"header"`
	ReceiptNo   string          `json:"receipt_no"`
	Date        string          `json:"date"`
	Customer    string          `json:"customer"`
	PaymentType string          `json:"payment_type"`
	Currency    string          `json:"currency,omitempty"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Items       []OrderItem     `json:"items"`
	Totals      Totals          `json:"totals"`
}

// TaxPercent returns the tax rate as a percentage label, e.g. "5".
func (r *Receipt) TaxPercent() string {
	return r.TaxRate.Mul(decimal.NewFromInt(100)).String()
}
