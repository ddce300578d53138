package sql

import (
	"fmt"

	"consignment-server/internal/infra/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewMemoryORM opens a private in-memory sqlite database with foreign keys enforced.
// Every call yields an independent database.
func NewMemoryORM(opts Options) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", utils.GenerateUUID())
	gormDB, err := gorm.Open(sqlite.Open(dsn), newGormConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sqlite connection pool: %w", err)
	}
	// a single connection keeps the shared in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              opts.QueryTimeout,
		system:               "sqlite",
	}, nil
}
