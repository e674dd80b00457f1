package db

import "gorm.io/gorm"

// MenuItem is a single entry in the site header navigation.
// Ordering is a dense integer; ties fall back to insertion order.
type MenuItem struct {
	gorm.Model
	Label     string `gorm:"not null"`
	Href      string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
	IsEnabled bool   `gorm:"not null;default:true"`
}
