package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/request"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

// TransactionHandler handles quoting and recording sales
type TransactionHandler struct {
	transactionService *service.TransactionService
	printerService     *service.PrinterService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService, printerService *service.PrinterService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		printerService:     printerService,
	}
}

// Quote prices an order without recording it
func (h *TransactionHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.transactionService.Quote(request.Lines(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order priced successfully", quote)
}

// Create records a sale and optionally prints its receipt. A printing
// problem is reported alongside the recorded sale.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.transactionService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		Lines:         request.Lines(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	data := gin.H{
		"transaction": sale.Record,
		"items":       sale.Items,
		"totals":      sale.Totals,
		"bill":        h.printerService.BillSummary(sale),
	}
	if req.PrintReceipt {
		data["receipt"] = h.printerService.PrintSale(sale)
	}

	response.Created(c, "Transaction saved", data)
}
