package service

import (
	"errors"
	"strings"

	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService wraps header navigation queries.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService returns a new MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

// List returns every menu item ordered by sort order; ties keep
// insertion order.
func (s *MenuService) List() ([]db.MenuItem, error) {
	var items []db.MenuItem
	if err := s.db.Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Enabled returns the items rendered in the public header.
func (s *MenuService) Enabled() ([]db.MenuItem, error) {
	var items []db.MenuItem
	if err := s.db.Where("is_enabled = ?", true).
		Order("sort_order asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites one menu item's editable fields.
func (s *MenuService) Update(id uint, label, href string, sortOrder int, isEnabled bool) error {
	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	updates := map[string]interface{}{
		"label":      strings.TrimSpace(label),
		"href":       strings.TrimSpace(href),
		"sort_order": sortOrder,
		"is_enabled": isEnabled,
	}
	return s.db.Model(&item).Updates(updates).Error
}
