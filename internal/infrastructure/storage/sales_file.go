package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/sangkips/smartpos-api/internal/config"
	"github.com/sangkips/smartpos-api/internal/domain/entity"
)

// PrepareSalesFile makes sure the sales file can be used: its directory is
// created when missing and an existing file is checked for the expected
// header. The file itself is created lazily by the first sale.
func PrepareSalesFile(cfg *config.StoreConfig) error {
	path := cfg.SalesCSVPath
	if path == "" {
		return errors.New("sales file path is empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create sales directory %s: %w", dir, err)
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Sales file %s does not exist yet, it will be created on the first sale", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat sales file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("sales file %s is a directory", path)
	}
	if info.Size() == 0 {
		log.Printf("Sales file %s is empty, the header will be written on the first sale", path)
		return nil
	}

	missing, err := missingColumns(path)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		log.Printf("Warning: sales file %s header is missing columns %v; those fields will read as empty", path, missing)
	}

	log.Printf("Using sales file %s", path)
	return nil
}

func missingColumns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read sales file header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range entity.TransactionColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing, nil
}
