package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/logger"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

// openTestDB gives each test an isolated in-memory store with the same
// constraint behavior as the real one: translated errors, enforced foreign
// keys, schema-level cascades.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A single connection keeps every session on the same in-memory
	// database and the same foreign_keys pragma.
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Model{},
		&types.Exterior{},
		&types.Option{},
		&types.CostItem{},
		&types.ExteriorCostItem{},
		&types.Location{},
		&types.IFPMapping{},
		&types.LocationMarkup{},
		&types.AccessCode{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}
