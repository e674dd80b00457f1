package db

import "gorm.io/gorm"

// SitePage represents an editable CMS page such as About or Contacts.
type SitePage struct {
	gorm.Model
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	ContentMd   string `gorm:"type:text"`
	IsPublished bool   `gorm:"not null;default:false"`
}
