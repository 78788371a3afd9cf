package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

// PrinterHandler exposes the receipt printer.
type PrinterHandler struct {
	printerService *service.PrinterService
}

func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint prints a sample receipt. A printer failure is reported in the
// body; the rendered text is returned either way.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	out := h.printerService.TestPrint()

	message := "Test page sent to printer"
	switch {
	case out.Error != "":
		message = "Test page rendered, printing failed"
	case !out.Printed:
		message = "Test page rendered, no printer configured"
	}
	response.OK(c, message, out)
}
