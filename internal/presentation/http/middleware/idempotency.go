package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/internal/domain/repository"
	"github.com/sangkips/smartpos-api/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a stored key
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	TTL  time.Duration
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST is retried with the
// same Idempotency-Key from the same client. The key is reserved before the
// handler runs, so a retry that arrives while the first request is still in
// progress gets 409 instead of a second sale. Only successful responses are
// stored; otherwise the reservation is released and the corrected request
// can be resent with the same key. Requests without the header are
// processed normally.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}
		scope := c.ClientIP()

		existing, reserved, err := config.Repo.Reserve(c.Request.Context(), idempotencyKey, scope, ttl)
		if err != nil {
			log.Printf("Idempotency reserve failed: %v", err)
			c.Next()
			return
		}

		if !reserved {
			if existing.InFlight {
				response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still in progress")
				c.Abort()
				return
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		// The outcome is recorded even if the client has gone away.
		ctx := context.WithoutCancel(c.Request.Context())
		completed := false
		defer func() {
			if completed {
				return
			}
			if err := config.Repo.Release(ctx, idempotencyKey, scope); err != nil {
				log.Printf("Failed to release idempotency key: %v", err)
			}
		}()

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		ikey := &entity.IdempotencyKey{
			Key:          idempotencyKey,
			Scope:        scope,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			ExpiresAt:    time.Now().Add(ttl),
		}
		if err := config.Repo.Complete(ctx, ikey); err != nil {
			log.Printf("Failed to store idempotency key: %v", err)
			return
		}
		completed = true
	}
}
