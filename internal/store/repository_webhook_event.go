// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-farol/internal/logger"
	"github.com/MKhiriev/go-farol/models"
)

const webhookEventsTable = "webhook_events"

var webhookEventColumns = []string{
	"event_id",
	"event_type",
	"resource_id",
	"payload",
	"correlation_id",
	"received_at",
}

// webhookEventRepository is the SQL implementation of
// [WebhookEventRepository]. Queries are built with squirrel using the
// placeholder format of the connected engine.
type webhookEventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewWebhookEventRepository constructs a [WebhookEventRepository] backed by
// db.
func NewWebhookEventRepository(db *DB, logger *logger.Logger) WebhookEventRepository {
	logger.Debug().Str("engine", db.engine.String()).Msg("creating webhook event repository")
	return &webhookEventRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts event. A unique violation on event_id is reported as
// [ErrDuplicateEvent]; other driver errors wrap [ErrExecutingStatement].
func (r *webhookEventRepository) Save(ctx context.Context, event models.WebhookEvent) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertQuery(event)
	if err != nil {
		log.Err(err).Str("func", "webhookEventRepository.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("event_id", event.EventID).Msg("webhook event is already stored")
			return ErrDuplicateEvent
		}

		log.Err(err).
			Str("func", "webhookEventRepository.Save").
			Str("event_id", event.EventID).
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("failed to insert webhook event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListRecent returns at most limit events ordered by received_at, newest
// first.
func (r *webhookEventRepository) ListRecent(ctx context.Context, limit int) ([]models.WebhookEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListRecentQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "webhookEventRepository.ListRecent").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "webhookEventRepository.ListRecent").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.WebhookEvent, 0, limit)
	for rows.Next() {
		var (
			event      models.WebhookEvent
			resourceID sql.NullInt64
			payload    string
		)

		if err = rows.Scan(
			&event.EventID,
			&event.EventType,
			&resourceID,
			&payload,
			&event.CorrelationID,
			&event.ReceivedAt,
		); err != nil {
			log.Err(err).Str("func", "webhookEventRepository.ListRecent").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		event.ResourceID = resourceID.Int64
		event.Payload = []byte(payload)
		event.ReceivedAt = event.ReceivedAt.UTC()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "webhookEventRepository.ListRecent").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *webhookEventRepository) buildInsertQuery(event models.WebhookEvent) (string, []any, error) {
	var resourceID any
	if event.ResourceID != 0 {
		resourceID = event.ResourceID
	}

	return r.db.builder().
		Insert(webhookEventsTable).
		Columns(webhookEventColumns...).
		Values(
			event.EventID,
			event.EventType,
			resourceID,
			string(event.Payload),
			event.CorrelationID,
			event.ReceivedAt.UTC(),
		).
		ToSql()
}

func (r *webhookEventRepository) buildListRecentQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	return r.db.builder().
		Select(webhookEventColumns...).
		From(webhookEventsTable).
		OrderBy("received_at DESC", "event_id DESC").
		Limit(uint64(limit)).
		ToSql()
}
