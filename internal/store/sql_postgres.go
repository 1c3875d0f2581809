// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
)

// NewConnectPostgres opens a pgx connection pool through database/sql.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openAndPing(ctx, "pgx", postgresDSN(cfg.DSN), "NewConnectPostgres", log)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	return &DB{
		DB:                 conn,
		engine:             config.EnginePostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

// postgresDSN rewrites driver-qualified schemes such as
// "postgresql+asyncpg://" to the plain "postgres://" pgx understands.
func postgresDSN(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}

	if base, _, qualified := strings.Cut(scheme, "+"); qualified || base == "pgx" {
		return "postgres://" + rest
	}

	return dsn
}
