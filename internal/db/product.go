package db

import "gorm.io/gorm"

// Product 定义了商品模型。Price 为空表示“价格按询”。
type Product struct {
	gorm.Model
	Slug             string `gorm:"uniqueIndex;not null"`
	Title            string `gorm:"not null"`
	Brand            string
	Price            *int
	Availability     string
	Short            string
	DescriptionMd    string `gorm:"type:text"`
	SearchKeywords   string
	FeaturedInSearch bool `gorm:"not null;default:false"`
	CategoryID       uint
	Category         Category
}
