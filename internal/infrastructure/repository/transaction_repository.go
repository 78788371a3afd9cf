package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	domainRepo "github.com/sangkips/smartpos-api/internal/domain/repository"
)

// transactionRepository keeps sales in a CSV file: a header row followed by
// one row per sale, CRLF-terminated with minimal quoting. Appends from this
// process are serialized; other processes writing the same file are not
// coordinated with.
type transactionRepository struct {
	path string
	mu   sync.Mutex
}

// NewTransactionRepository creates a transaction repository backed by the CSV file at path
func NewTransactionRepository(path string) domainRepo.TransactionRepository {
	return &transactionRepository{path: path}
}

func (r *transactionRepository) Append(ctx context.Context, record entity.TransactionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open sales file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat sales file: %w", err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = true

	if info.Size() == 0 {
		if err := w.Write(entity.TransactionColumns); err != nil {
			f.Close()
			return fmt.Errorf("failed to write sales header: %w", err)
		}
	}
	if err := w.Write(record.Row()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write sale: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush sale: %w", err)
	}

	return f.Close()
}

func (r *transactionRepository) Scan(ctx context.Context, visit domainRepo.TransactionVisitor) error {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open sales file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read sales header: %w", err)
	}
	header = append([]string(nil), header...)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Printf("Warning: skipping unreadable sales row at line %d: %v", parseErr.StartLine, parseErr.Err)
				continue
			}
			return fmt.Errorf("failed to read sales file: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if err := visit(line, recordFromRow(header, row)); err != nil {
			return err
		}
	}
}

// recordFromRow maps a row onto the record by header name. Columns missing
// from a short row read as empty; extra columns are ignored.
func recordFromRow(header, row []string) entity.TransactionRecord {
	var rec entity.TransactionRecord
	for i, column := range header {
		if i >= len(row) {
			break
		}
		rec.SetField(column, row[i])
	}
	return rec
}
