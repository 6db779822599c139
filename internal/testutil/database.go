// Package testutil provides shared helpers for setting up test databases
// and fixtures.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"arthika/internal/models"
)

var dbCounter atomic.Int64

var allModels = []interface{}{
	&models.User{},
	&models.Expense{},
	&models.Budget{},
	&models.Loan{},
	&models.SipInvestment{},
	&models.MonthlyInvestment{},
	&models.FinancialSummary{},
	&models.AuditLog{},
}

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. Each call returns an independent database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB drops all tables and closes the connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Migrator().DropTable(allModels...); err != nil {
		t.Fatalf("failed to drop tables: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	_ = sqlDB.Close()
}
