package request

import "github.com/sangkips/smartpos-api/pkg/itemlist"

// OrderItemRequest is one menu item on an order. Names and quantities are
// checked against the menu by the service, not by binding.
type OrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest asks for the totals of an order without recording it
type QuoteRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// CreateTransactionRequest records a sale
type CreateTransactionRequest struct {
	CustomerName  string             `json:"customer_name"`
	PaymentMethod string             `json:"payment_method"`
	Items         []OrderItemRequest `json:"items"`
	PrintReceipt  bool               `json:"print_receipt"`
}

// Lines converts the requested items to item list lines
func Lines(items []OrderItemRequest) []itemlist.Line {
	lines := make([]itemlist.Line, len(items))
	for i, it := range items {
		lines[i] = itemlist.Line{Name: it.Name, Quantity: it.Quantity}
	}
	return lines
}
