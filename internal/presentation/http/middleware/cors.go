package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/config"
)

// Origins of the till front-end during local development.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// The API only reads and appends.
var defaultCORSMethods = []string{"GET", "POST", "OPTIONS"}

var defaultCORSHeaders = []string{
	"Accept",
	"Authorization",
	"Content-Type",
	"Origin",
	RequestIDHeader,
}

// CORSMiddleware builds the CORS handler for the till front-end. Empty
// config lists fall back to the defaults above. The idempotency header is
// always allowed since checkout depends on it.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	origins := orDefault(cfg.AllowedOrigins, defaultCORSOrigins)
	headers := orDefault(cfg.AllowedHeaders, defaultCORSHeaders)
	if !slices.Contains(headers, IdempotencyKeyHeader) {
		headers = append(slices.Clone(headers), IdempotencyKeyHeader)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     orDefault(cfg.AllowedMethods, defaultCORSMethods),
		AllowHeaders:     headers,
		ExposeHeaders:    []string{"Content-Type", RequestIDHeader, IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
