package service

import (
	"errors"

	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryService wraps catalog category queries.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService returns a new CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// List returns all categories ordered by sort order.
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("sort_order asc, id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryWithCount annotates a category with its product count for the
// catalog index grid.
type CategoryWithCount struct {
	db.Category
	ProductCount int64
}

// ListWithCounts returns all categories with their product counts.
func (s *CategoryService) ListWithCounts() ([]CategoryWithCount, error) {
	categories, err := s.List()
	if err != nil {
		return nil, err
	}

	type row struct {
		CategoryID uint
		Count      int64
	}
	var rows []row
	if err := s.db.Model(&db.Product{}).
		Select("category_id, count(*) as count").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}

	out := make([]CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryWithCount{Category: c, ProductCount: counts[c.ID]})
	}
	return out, nil
}

// GetBySlug fetches a category for a given slug.
func (s *CategoryService) GetBySlug(slug string) (*db.Category, error) {
	var category db.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
