// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/migrations"
)

// DB is an open connection to one of the supported engines.
type DB struct {
	*sql.DB
	engine             config.DatabaseEngine
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings the database the DSN in cfg refers to.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch engine := cfg.Engine(); engine {
	case config.EnginePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.EngineSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.EngineMySQL:
		return NewConnectMySQL(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("engine", engine.String()).Msg("database URL does not name a supported engine")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, engine)
	}
}

// Engine returns the engine the connection talks to.
func (db *DB) Engine() config.DatabaseEngine {
	return db.engine
}

// Migrate applies every pending migration with the goose dialect of the
// engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, gooseDialect(db.engine))
}

// builder returns a squirrel statement builder with the placeholder format
// of the engine.
func (db *DB) builder() sq.StatementBuilderType {
	if db.engine == config.EnginePostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func gooseDialect(engine config.DatabaseEngine) string {
	switch engine {
	case config.EnginePostgres:
		return "postgres"
	case config.EngineMySQL:
		return "mysql"
	default:
		return "sqlite3"
	}
}

func openAndPing(ctx context.Context, driver, dsn, funcName string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", funcName).Msg("connected to database successfully")

	return conn, nil
}
