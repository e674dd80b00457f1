package service

import (
	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

// PortfolioService wraps portfolio project queries.
type PortfolioService struct {
	db *gorm.DB
}

// NewPortfolioService returns a new PortfolioService instance.
func NewPortfolioService(gdb *gorm.DB) *PortfolioService {
	return &PortfolioService{db: gdb}
}

// Published returns up to limit published projects for the home page.
func (s *PortfolioService) Published(limit int) ([]db.PortfolioProject, error) {
	var projects []db.PortfolioProject
	q := s.db.Where("is_published = ?", true).
		Order("sort_order asc, created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
