package service

import (
	"errors"
	"strings"

	"github.com/blacktechlight/internal/db"
	"gorm.io/gorm"
)

var ErrBlockNotFound = errors.New("home block not found")

// MoveDirection 表示首页区块在排序中的移动方向。
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// BlockService wraps home page block operations.
type BlockService struct {
	db *gorm.DB
}

// NewBlockService returns a new BlockService instance.
func NewBlockService(gdb *gorm.DB) *BlockService {
	return &BlockService{db: gdb}
}

// List returns every block ordered by sort order.
func (s *BlockService) List() ([]db.HomeBlock, error) {
	var blocks []db.HomeBlock
	if err := s.db.Order("sort_order asc, id asc").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Enabled returns the blocks rendered on the home page.
func (s *BlockService) Enabled() ([]db.HomeBlock, error) {
	var blocks []db.HomeBlock
	if err := s.db.Where("is_enabled = ?", true).
		Order("sort_order asc, id asc").Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Update overwrites a block's title and subtitle. An empty subtitle is
// stored as null, matching how the renderer treats absence.
func (s *BlockService) Update(id uint, title, subtitle string) error {
	var block db.HomeBlock
	if err := s.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlockNotFound
		}
		return err
	}

	var sub *string
	if trimmed := strings.TrimSpace(subtitle); trimmed != "" {
		sub = &trimmed
	}

	updates := map[string]interface{}{
		"title":    strings.TrimSpace(title),
		"subtitle": sub,
	}
	return s.db.Model(&block).Updates(updates).Error
}

// Toggle flips a block's enabled flag. The sort order is untouched.
func (s *BlockService) Toggle(id uint) error {
	var block db.HomeBlock
	if err := s.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlockNotFound
		}
		return err
	}
	return s.db.Model(&block).Update("is_enabled", !block.IsEnabled).Error
}

// Move swaps a block's sort order with its neighbour in the given
// direction. Moving the first block up or the last block down is a
// no-op. The swap runs in one transaction so a crash cannot leave two
// blocks sharing a sort order.
func (s *BlockService) Move(id uint, dir MoveDirection) error {
	blocks, err := s.List()
	if err != nil {
		return err
	}

	idx := -1
	for i, b := range blocks {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrBlockNotFound
	}

	swapWith := idx - 1
	if dir == MoveDown {
		swapWith = idx + 1
	}
	if swapWith < 0 || swapWith >= len(blocks) {
		return nil
	}

	a, b := blocks[idx], blocks[swapWith]
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.HomeBlock{}).Where("id = ?", a.ID).
			Update("sort_order", b.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&db.HomeBlock{}).Where("id = ?", b.ID).
			Update("sort_order", a.SortOrder).Error
	})
}
