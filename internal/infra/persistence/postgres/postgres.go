// Package postgres opens the PostgreSQL connection used in production.
package postgres

import (
	"agrifarma/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the primary (and any replicas) described by conn.
func Open(conn *pgLib.DBConn) (*gorm.DB, error) {
	if conn == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}

// OpenDSN connects with a plain libpq DSN, used by tooling and integration tests.
func OpenDSN(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PostgreSQL")
	}

	return db, nil
}
