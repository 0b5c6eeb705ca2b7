package store

import (
	"database/sql"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
