package service

import (
	"errors"
	"strings"

	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

var ErrPageNotFound = errors.New("page not found")

// 被静态路由占用的路径段，CMS 页面不允许覆盖它们。
var reservedSlugs = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"catalog":  {},
	"contacts": {},
	"debug":    {},
	"product":  {},
	"search":   {},
	"thanks":   {},
}

// SlugReserved reports whether a path segment shadows a static route.
func SlugReserved(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}

// PageService provides access to editable CMS pages.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// List returns all pages, most recently updated first.
func (s *PageService) List() ([]db.SitePage, error) {
	var pages []db.SitePage
	if err := s.db.Order("updated_at desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetBySlug fetches a page regardless of its publish state.
func (s *PageService) GetBySlug(slug string) (*db.SitePage, error) {
	var page db.SitePage
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// GetPublished fetches a page for public rendering. Reserved slugs and
// unpublished pages are both reported as not found.
func (s *PageService) GetPublished(slug string) (*db.SitePage, error) {
	if SlugReserved(slug) {
		return nil, ErrPageNotFound
	}
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !page.IsPublished {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// Update overwrites a page's title, content and publish state.
func (s *PageService) Update(slug, title, contentMd string, isPublished bool) (*db.SitePage, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":        strings.TrimSpace(title),
		"content_md":   contentMd,
		"is_published": isPublished,
	}
	if err := s.db.Model(page).Updates(updates).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// TogglePublished flips a page's publish gate.
func (s *PageService) TogglePublished(slug string) (*db.SitePage, error) {
	page, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(page).Update("is_published", !page.IsPublished).Error; err != nil {
		return nil, err
	}
	return page, nil
}
