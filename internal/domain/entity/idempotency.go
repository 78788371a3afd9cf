package entity

import "time"

// IdempotencyKey stores the response of a processed request so a retried
// request with the same key is answered without recording the sale again.
type IdempotencyKey struct {
	Key          string // The idempotency key from client
	Scope        string // Who sent it (client IP)
	Endpoint     string // e.g. "POST /api/v1/transactions"
	InFlight     bool   // reserved, response not stored yet
	ResponseCode int
	ResponseBody string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
