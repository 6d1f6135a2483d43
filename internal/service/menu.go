package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"heladeria/internal/model"
)

// MenuService serves the menu loaded from a JSON file at startup. The
// menu is immutable for the lifetime of the process; managing its
// contents happens outside this application.
type MenuService struct {
	items []model.MenuItem
}

// NewMenuService loads the menu file. A missing or invalid file leaves
// the service running with an empty menu, mirroring how the rest of the
// application degrades: the failure is logged, not fatal.
func NewMenuService(path string) *MenuService {
	items, err := LoadMenu(path)
	if err != nil {
		slog.Error("failed to load menu", "path", path, "error", err)
		items = nil
	}
	return &MenuService{items: items}
}

// LoadMenu reads and validates a menu file: every entry needs a positive
// id, a non-empty name and a non-negative price.
func LoadMenu(path string) ([]model.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var items []model.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}

	for _, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("menu item %q: invalid id %d", it.Name, it.ID)
		}
		if it.Name == "" {
			return nil, errors.New("menu item with empty name")
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("menu item %q: negative price", it.Name)
		}
	}

	return items, nil
}

// Items returns a copy of the menu.
func (s *MenuService) Items() []model.MenuItem {
	items := make([]model.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}
