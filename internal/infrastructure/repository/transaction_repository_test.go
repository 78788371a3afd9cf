package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(name, dateTime string) entity.TransactionRecord {
	return entity.TransactionRecord{
		CustomerName:  name,
		OrderedItems:  "Latte x2; Vada pav x1",
		Subtotal:      "270.00",
		GST:           "13.50",
		FinalTotal:    "283.50",
		PaymentMethod: "Cash",
		DateTime:      dateTime,
	}
}

func collect(t *testing.T, path string) ([]int, []entity.TransactionRecord) {
	t.Helper()
	var lines []int
	var records []entity.TransactionRecord
	err := NewTransactionRepository(path).Scan(context.Background(), func(line int, rec entity.TransactionRecord) error {
		lines = append(lines, line)
		records = append(records, rec)
		return nil
	})
	require.NoError(t, err)
	return lines, records
}

func TestTransactionRepository_AppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := NewTransactionRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleRecord("Alice", "2026-10-19 10:00:00")))
	require.NoError(t, repo.Append(ctx, sampleRecord("Doe, Jane", "2026-10-19 10:05:00")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "CustomerName,OrderedItems,Subtotal,GST,FinalTotal,PaymentMethod,DateTime\r\n" +
		"Alice,Latte x2; Vada pav x1,270.00,13.50,283.50,Cash,2026-10-19 10:00:00\r\n" +
		"\"Doe, Jane\",Latte x2; Vada pav x1,270.00,13.50,283.50,Cash,2026-10-19 10:05:00\r\n"
	assert.Equal(t, want, string(data))
}

func TestTransactionRepository_AppendToEmptyFileWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, NewTransactionRepository(path).Append(context.Background(), sampleRecord("Alice", "2026-10-19 10:00:00")))

	_, records := collect(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].CustomerName)
}

func TestTransactionRepository_ScanMissingFile(t *testing.T) {
	lines, records := collect(t, filepath.Join(t.TempDir(), "absent.csv"))
	assert.Empty(t, lines)
	assert.Empty(t, records)
}

func TestTransactionRepository_ScanEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, records := collect(t, path)
	assert.Empty(t, records)
}

func TestTransactionRepository_ScanMapsColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	content := "DateTime,CustomerName,FinalTotal,OrderedItems\n" +
		"2026-10-19 09:00:00,Bob,100.00,Samosa x4\n" +
		"2026-10-19 09:30:00,Carol\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, records := collect(t, path)
	require.Len(t, records, 2)

	assert.Equal(t, []int{2, 3}, lines)
	assert.Equal(t, "Bob", records[0].CustomerName)
	assert.Equal(t, "100.00", records[0].FinalTotal)
	assert.Equal(t, "Samosa x4", records[0].OrderedItems)
	assert.Equal(t, "", records[0].GST)

	assert.Equal(t, "Carol", records[1].CustomerName)
	assert.Equal(t, "", records[1].FinalTotal)
}

func TestTransactionRepository_ScanRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := NewTransactionRepository(path)
	rec := sampleRecord("Quote \"Q\" Person", "2026-10-19 11:00:00")
	rec.OrderedItems = "Latte x1; Chocolate Donut x2"

	require.NoError(t, repo.Append(context.Background(), rec))

	_, records := collect(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestTransactionRepository_ScanStopsOnVisitorError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := NewTransactionRepository(path)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, sampleRecord("A", "2026-10-19 10:00:00")))
	require.NoError(t, repo.Append(ctx, sampleRecord("B", "2026-10-19 10:00:01")))

	stop := errors.New("stop")
	visited := 0
	err := repo.Scan(ctx, func(int, entity.TransactionRecord) error {
		visited++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, visited)
}

func TestTransactionRepository_CancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	repo := NewTransactionRepository(path)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Append(ctx, sampleRecord("A", "2026-10-19 10:00:00")), context.Canceled)

	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
