package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/application/service"
	"github.com/sangkips/smartpos-api/internal/config"
	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/internal/domain/enum"
	domainRepo "github.com/sangkips/smartpos-api/internal/domain/repository"
	"github.com/sangkips/smartpos-api/internal/infrastructure/repository"
	"github.com/sangkips/smartpos-api/internal/infrastructure/storage"
	"github.com/sangkips/smartpos-api/internal/presentation/http/handler"
	"github.com/sangkips/smartpos-api/internal/presentation/http/routes"
	"github.com/sangkips/smartpos-api/pkg/printer"
	"github.com/sangkips/smartpos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Prepare the sales file
	if err := storage.PrepareSalesFile(&cfg.Store); err != nil {
		log.Fatalf("Failed to prepare sales file: %v", err)
	}

	// Load the menu
	menuSpecs, err := config.LoadMenu(&cfg.Menu)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}
	menu, err := service.NewMenuFromConfig(menuSpecs)
	if err != nil {
		log.Fatalf("Invalid menu: %v", err)
	}
	log.Printf("Menu loaded: %d items in %d categories", menu.Len(), len(menu.Categories))

	paymentMethods := enum.ParsePaymentMethods(cfg.Billing.PaymentMethods)
	if len(paymentMethods) == 0 {
		paymentMethods = enum.DefaultPaymentMethods
	}

	taxRate := decimal.NewFromFloat(cfg.Billing.TaxRate)
	if taxRate.IsNegative() {
		log.Fatalf("GST_RATE must not be negative, got %s", taxRate)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(cfg.Store.SalesCSVPath)
	idempotencyRepo := repository.NewIdempotencyRepository()
	go purgeIdempotencyKeys(idempotencyRepo, time.Hour)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin.Password, cfg.Admin.PasswordHash, jwtManager)
	if err != nil {
		log.Fatalf("Failed to initialize admin login: %v", err)
	}
	menuService := service.NewMenuService(menu)
	pricingService := service.NewPricingService(taxRate)
	transactionService := service.NewTransactionService(transactionRepo, pricingService, menuService, paymentMethods)
	reportService := service.NewReportService(transactionRepo, cfg.Billing.Currency)

	// Initialize receipt printer
	receiptPrinter, err := printer.New(printer.Options{
		Type:     cfg.Printer.Type,
		USBPath:  cfg.Printer.USBPath,
		Address:  cfg.Printer.Address,
		FilePath: cfg.Printer.FilePath,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		receiptPrinter = printer.NewNullPrinter()
	}
	defer receiptPrinter.Close()

	printerService := service.NewPrinterService(
		receiptPrinter,
		cfg.Printer.Type,
		cfg.Printer.Width,
		entity.ReceiptHeader{
			StoreName: cfg.Billing.StoreName,
			Address:   cfg.Billing.StoreAddress,
			Phone:     cfg.Billing.StorePhone,
			TaxID:     cfg.Billing.TaxID,
		},
		cfg.Billing.Currency,
		taxRate,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Menu:        handler.NewMenuHandler(menuService, transactionService, cfg.Billing.Currency),
		Transaction: handler.NewTransactionHandler(transactionService, printerService),
		Report:      handler.NewReportHandler(reportService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, GST rate: %s, sales file: %s", cfg.App.Env, taxRate, cfg.Store.SalesCSVPath)

	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// purgeIdempotencyKeys drops expired idempotency keys every interval.
func purgeIdempotencyKeys(repo domainRepo.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			log.Printf("Warning: Failed to purge idempotency keys: %v", err)
		}
	}
}
