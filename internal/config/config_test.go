package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Cash", "Card", "UPI"}, splitList([]string{"Cash, Card,UPI"}))
	assert.Equal(t, []string{"a", "b"}, splitList([]string{"a", " ", "b,"}))
	assert.Empty(t, splitList(nil))
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("GST_RATE", "0.18")

	cfg := Load()

	assert.Equal(t, 0.18, cfg.Billing.TaxRate)
	assert.Equal(t, []string{"Cash", "Card", "UPI"}, cfg.Billing.PaymentMethods)
	assert.Equal(t, "sales.csv", cfg.Store.SalesCSVPath)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 32, cfg.Printer.Width)
}

func TestLoadMenu_Default(t *testing.T) {
	menu, err := LoadMenu(&MenuConfig{})
	require.NoError(t, err)

	require.Len(t, menu, 2)
	assert.Equal(t, "Drinks", menu[0].Name)
	assert.Equal(t, MenuItemSpec{Name: "Latte", Price: "120.00"}, menu[0].Items[0])
	assert.Equal(t, "Snacks", menu[1].Name)
}

func TestLoadMenu_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	content := `categories:
  - name: Drinks
    items:
      - name: Filter Coffee
        price: "45.50"
  - name: Snacks
    items:
      - name: Idli
        price: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	menu, err := LoadMenu(&MenuConfig{File: path})
	require.NoError(t, err)

	require.Len(t, menu, 2)
	assert.Equal(t, "Filter Coffee", menu[0].Items[0].Name)
	assert.Equal(t, "45.50", menu[0].Items[0].Price)
	assert.Equal(t, "40", menu[1].Items[0].Price)
}

func TestLoadMenu_MissingFile(t *testing.T) {
	_, err := LoadMenu(&MenuConfig{File: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}
