package service

import (
	"path/filepath"
	"testing"

	"github.com/blacktechlight/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.Category{},
		&db.Product{},
		&db.SitePage{},
		&db.MenuItem{},
		&db.HomeBlock{},
		&db.PortfolioProject{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func mustCreate(t *testing.T, gdb *gorm.DB, value interface{}) {
	t.Helper()
	if err := gdb.Create(value).Error; err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
}
