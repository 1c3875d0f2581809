package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-farol/internal/config"
	"github.com/MKhiriev/go-farol/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the connection that backs them.
type Storages struct {
	WebhookEventRepository WebhookEventRepository

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		WebhookEventRepository: NewWebhookEventRepository(db, log),
		db:                     db,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
