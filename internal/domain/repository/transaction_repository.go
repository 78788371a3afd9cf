package repository

import (
	"context"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
)

// TransactionVisitor receives each stored sale with its 1-based line number
// in the backing file. Returning an error stops the scan.
type TransactionVisitor func(line int, record entity.TransactionRecord) error

// TransactionRepository is the append-only store of finalized sales.
// Records are never updated or deleted.
type TransactionRepository interface {
	// Append stores one record, creating the store (with its header) first
	// when it does not exist or is empty.
	Append(ctx context.Context, record entity.TransactionRecord) error

	// Scan visits every stored record in write order. A missing or empty
	// store yields no records and no error.
	Scan(ctx context.Context, visit TransactionVisitor) error
}
