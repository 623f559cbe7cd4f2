// Package mock provides in-process substitutes for external dependencies
// used by the integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/my-wallet/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps an in-memory SQLite database shared across scenarios.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database and migrates the schema.
func NewDb() *Db {
	if db == nil {
		dbOnce.Do(func() {
			db = open()
		})
	}
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every scenario on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.SavingGoalModel{},
	); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// ClearDB wipes all rows so each scenario starts from an empty state.
func (d *Db) ClearDB() error {
	for _, table := range []string{"transactions", "budgets", "saving_goals"} {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
