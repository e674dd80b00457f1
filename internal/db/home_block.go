package db

import "gorm.io/gorm"

// HomeBlock 表示首页上一个可开关、可排序的固定区块。
// Key 是渲染器识别的封闭枚举，未知的 key 不渲染任何内容。
type HomeBlock struct {
	gorm.Model
	Key       string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	Subtitle  *string
	SortOrder int  `gorm:"not null;default:0"`
	IsEnabled bool `gorm:"not null;default:true"`
}

// 渲染器识别的首页区块 key。
const (
	BlockKeyHero        = "hero"
	BlockKeyCatalog     = "catalog"
	BlockKeyProcurement = "procurement"
	BlockKeyAbout       = "about"
	BlockKeyService     = "service"
	BlockKeyPortfolio   = "portfolio"
)
