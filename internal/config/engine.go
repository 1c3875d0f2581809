// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// DatabaseEngine identifies the database a DSN points at.
type DatabaseEngine int

const (
	EngineUnknown DatabaseEngine = iota
	EngineSQLite
	EnginePostgres
	EngineMySQL
)

func (e DatabaseEngine) String() string {
	switch e {
	case EngineSQLite:
		return "sqlite"
	case EnginePostgres:
		return "postgres"
	case EngineMySQL:
		return "mysql"
	default:
		return "unknown"
	}
}

// IsLocalFile reports whether the engine stores data in a local file.
func (e DatabaseEngine) IsLocalFile() bool {
	return e == EngineSQLite
}

// DetectEngine derives the engine from the DSN scheme. Driver suffixes such
// as "postgresql+asyncpg" are ignored.
func DetectEngine(dsn string) DatabaseEngine {
	scheme, _, ok := strings.Cut(strings.TrimSpace(dsn), "://")
	if !ok {
		if strings.HasSuffix(strings.ToLower(dsn), ".db") || dsn == ":memory:" {
			return EngineSQLite
		}
		return EngineUnknown
	}

	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")
	switch scheme {
	case "sqlite", "sqlite3", "file":
		return EngineSQLite
	case "postgres", "postgresql", "pgx":
		return EnginePostgres
	case "mysql":
		return EngineMySQL
	default:
		return EngineUnknown
	}
}
