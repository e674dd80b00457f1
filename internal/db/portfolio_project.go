package db

import "gorm.io/gorm"

// PortfolioProject is a completed installation shown on the home page.
type PortfolioProject struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	City        string
	Year        int
	Summary     string
	SortOrder   int  `gorm:"not null;default:0"`
	IsPublished bool `gorm:"not null;default:true"`
}
