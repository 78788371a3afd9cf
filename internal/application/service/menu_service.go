package service

import (
	"fmt"
	"strings"

	"github.com/sangkips/smartpos-api/internal/config"
	"github.com/sangkips/smartpos-api/internal/domain/entity"
	"github.com/sangkips/smartpos-api/pkg/apperror"
	"github.com/sangkips/smartpos-api/pkg/itemlist"
	"github.com/shopspring/decimal"
)

// MenuService resolves ordered item names against the price table
type MenuService struct {
	menu *entity.Menu
}

// NewMenuService creates a menu service
func NewMenuService(menu *entity.Menu) *MenuService {
	return &MenuService{menu: menu}
}

// NewMenuFromConfig converts configured categories into a menu. Prices must
// be non-negative decimals.
func NewMenuFromConfig(specs []config.MenuCategorySpec) (*entity.Menu, error) {
	categories := make([]entity.MenuCategory, 0, len(specs))
	for _, c := range specs {
		category := entity.MenuCategory{Name: c.Name}
		for _, it := range c.Items {
			name := strings.TrimSpace(it.Name)
			if name == "" {
				return nil, fmt.Errorf("menu category %q has an item without a name", c.Name)
			}
			price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
			if err != nil {
				return nil, fmt.Errorf("menu item %q has invalid price %q: %w", name, it.Price, err)
			}
			if price.IsNegative() {
				return nil, fmt.Errorf("menu item %q has negative price %s", name, it.Price)
			}
			category.Items = append(category.Items, entity.MenuItem{Name: name, Price: price})
		}
		categories = append(categories, category)
	}
	return entity.NewMenu(categories...), nil
}

// Menu returns the price table
func (s *MenuService) Menu() *entity.Menu {
	return s.menu
}

// Categories returns the menu grouped for display
func (s *MenuService) Categories() []entity.MenuCategory {
	return s.menu.Categories
}

// Lookup returns the unit price of an item
func (s *MenuService) Lookup(name string) (decimal.Decimal, bool) {
	return s.menu.Lookup(name)
}

// BuildOrder attaches menu prices to the requested lines. Every name must be
// on the menu and every quantity positive.
func (s *MenuService) BuildOrder(lines []itemlist.Line) ([]entity.OrderItem, error) {
	if len(lines) == 0 {
		return nil, apperror.NewInvalidOrderError("Order has no items")
	}

	items := make([]entity.OrderItem, 0, len(lines))
	var fieldErrors []apperror.FieldError
	for i, l := range lines {
		name := strings.TrimSpace(l.Name)
		price, ok := s.menu.Lookup(name)
		if !ok {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: fmt.Sprintf("unknown item %q", l.Name),
			})
			continue
		}
		qty, err := ValidateQuantity(l.Quantity)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "must be a positive integer",
			})
			continue
		}
		items = append(items, entity.OrderItem{Name: name, Quantity: qty, UnitPrice: price})
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}
	return items, nil
}
