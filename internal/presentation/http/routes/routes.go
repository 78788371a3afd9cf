package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/config"
	domainRepo "github.com/sangkips/smartpos-api/internal/domain/repository"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
	"github.com/sangkips/smartpos-api/internal/presentation/http/handler"
	"github.com/sangkips/smartpos-api/internal/presentation/http/middleware"
	"github.com/sangkips/smartpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Menu        *handler.MenuHandler
	Transaction *handler.TransactionHandler
	Report      *handler.ReportHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// NewRateLimiter builds the per-client limiter from configuration.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	rps := 0.0
	if cfg.Duration > 0 {
		rps = float64(cfg.Requests) / float64(cfg.Duration)
	}
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: rps,
		BurstSize:         cfg.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		registerCounterRoutes(v1, h, deps)
		registerAdminRoutes(v1, h, deps)
		registerPrinterRoutes(v1, h, deps)
	}

	return router
}

func registerCounterRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.GET("/menu", h.Menu.GetMenu)
	v1.POST("/orders/quote", h.Transaction.Quote)
	v1.POST("/transactions",
		middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
		h.Transaction.Create,
	)
}

func registerAdminRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.POST("/admin/login", h.Auth.Login)

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(deps.JWTManager))
	admin.Use(middleware.RequireRole(utils.RoleAdmin))
	{
		admin.GET("/reports/daily", h.Report.GetDailySummary)
		admin.GET("/reports/daily/text", h.Report.GetDailyReportText)
		admin.GET("/transactions/today", h.Report.ListTodayTransactions)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	printer := v1.Group("/printer")
	printer.Use(middleware.AuthMiddleware(deps.JWTManager))
	printer.Use(middleware.RequireRole(utils.RoleAdmin))
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
