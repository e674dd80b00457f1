package service

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductFieldsMissing = errors.New("product slug, title and category are required")
)

// ProductService wraps product related database operations.
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a ProductService instance.
func NewProductService(gdb *gorm.DB) *ProductService {
	return &ProductService{db: gdb}
}

// ProductInput represents fields accepted when creating or updating a product.
type ProductInput struct {
	Slug           string
	Title          string
	Brand          string
	PriceRaw       string
	Availability   string
	Short          string
	DescriptionMd  string
	SearchKeywords string
	Featured       bool
	CategoryID     uint
}

// ParsePrice converts a submitted price field into a nullable price.
// Empty or unparseable input means "price on request"; otherwise the
// value is floored and clamped to non-negative.
func ParsePrice(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	floored := int(math.Floor(value))
	if floored < 0 {
		floored = 0
	}
	return &floored
}

// List returns all products with their categories, newest first.
func (s *ProductService) List() ([]db.Product, error) {
	var products []db.Product
	if err := s.db.Preload("Category").Order("created_at desc, id desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns a category's products, newest first.
func (s *ProductService) ListByCategory(categoryID uint) ([]db.Product, error) {
	var products []db.Product
	if err := s.db.Where("category_id = ?", categoryID).
		Order("created_at desc, id desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Featured returns the promo rotation pool, newest first.
func (s *ProductService) Featured() ([]db.Product, error) {
	var products []db.Product
	if err := s.db.Where("featured_in_search = ?", true).
		Order("created_at desc, id desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug fetches a product for a given public slug.
func (s *ProductService) GetBySlug(slug string) (*db.Product, error) {
	var product db.Product
	if err := s.db.Preload("Category").Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlugOrID resolves an admin route value against slug first, then
// the numeric id, matching the edit form's permissive addressing.
func (s *ProductService) GetBySlugOrID(key string) (*db.Product, error) {
	product, err := s.GetBySlug(key)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, ErrProductNotFound) {
		return nil, err
	}

	id, parseErr := strconv.ParseUint(key, 10, 32)
	if parseErr != nil {
		return nil, ErrProductNotFound
	}

	var byID db.Product
	if err := s.db.Preload("Category").First(&byID, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &byID, nil
}

// Create persists a new product. Slug, title and category are required;
// the price is floored and clamped via ParsePrice.
func (s *ProductService) Create(input ProductInput) (*db.Product, error) {
	if strings.TrimSpace(input.Slug) == "" ||
		strings.TrimSpace(input.Title) == "" ||
		input.CategoryID == 0 {
		return nil, ErrProductFieldsMissing
	}

	product := db.Product{
		Slug:             strings.TrimSpace(input.Slug),
		Title:            strings.TrimSpace(input.Title),
		Brand:            strings.TrimSpace(input.Brand),
		Price:            ParsePrice(input.PriceRaw),
		Availability:     strings.TrimSpace(input.Availability),
		Short:            strings.TrimSpace(input.Short),
		DescriptionMd:    strings.TrimSpace(input.DescriptionMd),
		SearchKeywords:   strings.TrimSpace(input.SearchKeywords),
		FeaturedInSearch: input.Featured,
		CategoryID:       input.CategoryID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update overwrites a product's editable fields. The slug is the public
// identifier and stays fixed. A missing product is reported via
// ErrProductNotFound so the handler can no-op uniformly.
func (s *ProductService) Update(id uint, input ProductInput) (*db.Product, error) {
	var product db.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"title":              strings.TrimSpace(input.Title),
		"brand":              strings.TrimSpace(input.Brand),
		"price":              ParsePrice(input.PriceRaw),
		"availability":       strings.TrimSpace(input.Availability),
		"short":              strings.TrimSpace(input.Short),
		"description_md":     strings.TrimSpace(input.DescriptionMd),
		"search_keywords":    strings.TrimSpace(input.SearchKeywords),
		"featured_in_search": input.Featured,
	}
	if input.CategoryID != 0 {
		updates["category_id"] = input.CategoryID
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBySlugOrID(strconv.FormatUint(uint64(id), 10))
}
