package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/pkg/printer"
	"github.com/sangkips/smartpos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// PrinterService handles receipt formatting and printing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	width       int
	header      entity.ReceiptHeader
	currency    string
	taxRate     decimal.Decimal
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	printerType string,
	width int,
	header entity.ReceiptHeader,
	currency string,
	taxRate decimal.Decimal,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		width:       width,
		header:      header,
		currency:    currency,
		taxRate:     taxRate,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// PrintedReceipt is a rendered receipt and the outcome of sending it.
type PrintedReceipt struct {
	Receipt *entity.Receipt `json:"receipt"`
	Text    string          `json:"text"`
	Printed bool            `json:"printed"`
	Error   string          `json:"error,omitempty"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != printer.TypeNone && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// The receipt is returned even when printing fails.
func (s *PrinterService) TestPrint() *PrintedReceipt {
	items := []entity.OrderItem{
		{Name: "Test Item 1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		{Name: "Test Item 2", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
	}
	receipt := &entity.Receipt{
		Header:      entity.ReceiptHeader{StoreName: "PRINTER TEST", Address: s.header.StoreName},
		ReceiptNo:   "TEST-001",
		Date:        time.Now().Format(entity.DateTimeLayout),
		Customer:    "System",
		PaymentType: "Cash",
		Currency:    s.currency,
		TaxRate:     decimal.Zero,
		Items:       items,
		Totals: entity.Totals{
			Subtotal:   decimal.NewFromInt(20),
			GST:        decimal.Zero,
			FinalTotal: decimal.NewFromInt(20),
		},
	}
	return s.print(receipt)
}

// NewReceipt composes the receipt for a recorded sale.
func (s *PrinterService) NewReceipt(sale *Sale) *entity.Receipt {
	return &entity.Receipt{
		Header:      s.header,
		ReceiptNo:   utils.GenerateReceiptNo("RCPT"),
		Date:        sale.Record.DateTime,
		Customer:    sale.Record.CustomerName,
		PaymentType: sale.Record.PaymentMethod,
		Currency:    s.currency,
		TaxRate:     s.taxRate,
		Items:       sale.Items,
		Totals:      sale.Totals,
	}
}

// PrintSale renders the receipt for a sale and sends it to the printer.
// A printer failure is logged and reported on the result, never returned:
// the sale is already recorded.
func (s *PrinterService) PrintSale(sale *Sale) *PrintedReceipt {
	return s.print(s.NewReceipt(sale))
}

func (s *PrinterService) print(receipt *entity.Receipt) *PrintedReceipt {
	doc := FormatReceipt(receipt, s.width)

	out := &PrintedReceipt{Receipt: receipt, Text: doc.Plain()}
	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("Printer error (receipt %s): %v", receipt.ReceiptNo, err)
		out.Error = err.Error()
		return out
	}

	out.Printed = s.printerType != printer.TypeNone && s.printerType != ""
	return out
}

// BillSummary renders the short bill shown at the counter after a sale.
func (s *PrinterService) BillSummary(sale *Sale) string {
	var b strings.Builder
	b.WriteString("--- BILL SUMMARY ---\n")
	fmt.Fprintf(&b, "Customer: %s\n", sale.Record.CustomerName)
	fmt.Fprintf(&b, "Subtotal: %s%s\n", s.currency, sale.Totals.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "GST (%s%%): %s%s\n", percent(s.taxRate), s.currency, sale.Totals.GST.StringFixed(2))
	fmt.Fprintf(&b, "Final Total: %s%s\n", s.currency, sale.Totals.FinalTotal.StringFixed(2))
	fmt.Fprintf(&b, "Payment Method: %s\n", sale.Record.PaymentMethod)
	return b.String()
}

// FormatReceipt lays out a receipt on a document of the given width.
func FormatReceipt(r *entity.Receipt, width int) *printer.Document {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("GSTIN: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	for _, it := range r.Items {
		doc.ItemLine(it.Quantity, it.Name, it.LineTotal().StringFixed(2))
		if it.Quantity > 1 {
			doc.TextF("  @ %s each", it.UnitPrice.StringFixed(2))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", r.Currency+r.Totals.Subtotal.StringFixed(2))
	if r.TaxRate.IsPositive() {
		doc.KeyValue(fmt.Sprintf("GST (%s%%):", r.TaxPercent()), r.Currency+r.Totals.GST.StringFixed(2))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Currency+r.Totals.FinalTotal.StringFixed(2)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String()
}
