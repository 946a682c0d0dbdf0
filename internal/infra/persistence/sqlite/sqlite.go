// Package sqlite opens SQLite databases for local development and tests.
package sqlite

import (
	"fmt"
	"net/url"

	"agrifarma/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens a file database with foreign keys enforced.
func Open(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000&_journal_mode=WAL", path)

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// SQLite allows a single writer; serialise through one connection.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenMemory opens a private shared-cache in-memory database named name.
func OpenMemory(name string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", url.PathEscape(name))

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open in-memory sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
