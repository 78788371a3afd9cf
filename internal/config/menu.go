package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// MenuItemSpec is a menu entry as configured. Price is kept as text so it is
// converted to a decimal without passing through a float.
type MenuItemSpec struct {
	Name  string `mapstructure:"name"`
	Price string `mapstructure:"price"`
}

// MenuCategorySpec is a configured menu category.
type MenuCategorySpec struct {
	Name  string         `mapstructure:"name"`
	Items []MenuItemSpec `mapstructure:"items"`
}

type menuFile struct {
	Categories []MenuCategorySpec `mapstructure:"categories"`
}

// DefaultMenu is the built-in price table.
func DefaultMenu() []MenuCategorySpec {
	return []MenuCategorySpec{
		{
			Name: "Drinks",
			Items: []MenuItemSpec{
				{Name: "Latte", Price: "120.00"},
				{Name: "Espresso", Price: "100.00"},
				{Name: "Cappuccino", Price: "130.00"},
				{Name: "Black Coffee", Price: "90.00"},
				{Name: "Masala Tea", Price: "60.00"},
			},
		},
		{
			Name: "Snacks",
			Items: []MenuItemSpec{
				{Name: "Vada pav", Price: "30.00"},
				{Name: "Samosa", Price: "25.00"},
				{Name: "Grilled Sandwich", Price: "70.00"},
				{Name: "French Fries", Price: "80.00"},
				{Name: "Chocolate Donut", Price: "60.00"},
			},
		},
	}
}

// LoadMenu returns the categories from the configured menu file, or the
// built-in menu when no file is configured.
//
// The file is YAML (or any format viper reads by extension):
//
//	categories:
//	  - name: Drinks
//	    items:
//	      - name: Latte
//	        price: 120.00
func LoadMenu(cfg *MenuConfig) ([]MenuCategorySpec, error) {
	if cfg.File == "" {
		return DefaultMenu(), nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.File)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read menu file %s: %w", cfg.File, err)
	}

	var mf menuFile
	if err := v.Unmarshal(&mf); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", cfg.File, err)
	}
	if len(mf.Categories) == 0 {
		return nil, fmt.Errorf("menu file %s defines no categories", cfg.File)
	}

	return mf.Categories, nil
}
