package db

import "gorm.io/gorm"

// Category 定义了商品目录分类模型。
type Category struct {
	gorm.Model
	Slug      string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
	Products  []Product
}
