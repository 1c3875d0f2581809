// Package store persists service hook notifications in a relational
// database. PostgreSQL, SQLite and MySQL are supported; the engine is chosen
// from the database URL.
package store

import (
	"context"

	"github.com/MKhiriev/go-farol/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/webhook_repository_mock.go -package=mock

// WebhookEventRepository stores received service hook events.
type WebhookEventRepository interface {
	// Save inserts event. An event whose EventID is already stored gives
	// [ErrDuplicateEvent].
	Save(ctx context.Context, event models.WebhookEvent) error

	// ListRecent returns at most limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]models.WebhookEvent, error)
}

// ErrorClassificator inspects driver errors of one database engine.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
