package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

// MenuHandler serves the price table
type MenuHandler struct {
	menuService        *service.MenuService
	transactionService *service.TransactionService
	currency           string
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService, transactionService *service.TransactionService, currency string) *MenuHandler {
	return &MenuHandler{
		menuService:        menuService,
		transactionService: transactionService,
		currency:           currency,
	}
}

// GetMenu returns the menu categories, prices and accepted payment methods
func (h *MenuHandler) GetMenu(c *gin.Context) {
	response.OK(c, "Menu retrieved successfully", gin.H{
		"categories":      h.menuService.Categories(),
		"currency":        h.currency,
		"payment_methods": h.transactionService.PaymentMethods(),
	})
}
