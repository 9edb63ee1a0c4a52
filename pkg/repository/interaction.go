package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedmix/pkg/domain"
)

// InteractionRepository handles per-user interaction records
type InteractionRepository struct {
	db *sqlx.DB
}

// interactionSQL represents an interaction for SQL operations
type interactionSQL struct {
	ID             int64     `db:"id"`
	UserID         string    `db:"user_id"`
	ContentItemID  int64     `db:"content_item_id"`
	Type           string    `db:"type"`
	WatchDuration  *int64    `db:"watch_duration"`
	CompletionRate *float64  `db:"completion_rate"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// interactionRecordSQL is an interaction joined with its content item
type interactionRecordSQL struct {
	interactionSQL
	Content contentSQL `db:"c"`
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *sqlx.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// UpsertInteraction records an interaction. Repeating the same (user, content, type)
// refreshes updated_at and watch details instead of adding a row.
func (r *InteractionRepository) UpsertInteraction(ctx context.Context, in *domain.Interaction) error {
	now := time.Now().UTC()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	if in.UpdatedAt.IsZero() {
		in.UpdatedAt = in.CreatedAt
	}

	return withLockRetry(ctx, func() error {
		query := `
			INSERT INTO interactions (user_id, content_item_id, type, watch_duration, completion_rate, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id, content_item_id, type) DO UPDATE SET
				watch_duration = COALESCE(excluded.watch_duration, interactions.watch_duration),
				completion_rate = COALESCE(excluded.completion_rate, interactions.completion_rate),
				updated_at = excluded.updated_at
			RETURNING id
		`
		var id int64
		err := r.db.GetContext(ctx, &id, query, in.UserID, in.ContentItemID, string(in.Type),
			in.WatchDuration, in.CompletionRate, in.CreatedAt.UTC(), in.UpdatedAt.UTC())
		if err != nil {
			return fmt.Errorf("upsert interaction: %w", err)
		}
		in.ID = id
		return nil
	})
}

// ListInteractions returns the user's interactions, optionally limited to the given types
func (r *InteractionRepository) ListInteractions(ctx context.Context, userID string, types ...domain.InteractionType) ([]domain.Interaction, error) {
	query := "SELECT * FROM interactions WHERE user_id = ?"
	args := []any{userID}
	if len(types) > 0 {
		q, a, err := sqlx.In(" AND type IN (?)", typeStrings(types))
		if err != nil {
			return nil, fmt.Errorf("build interactions query: %w", err)
		}
		query += q
		args = append(args, a...)
	}
	query += " ORDER BY updated_at DESC, id DESC"

	var rows []interactionSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	res := make([]domain.Interaction, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// HasInteraction checks if the user has an interaction of the given type for the content
func (r *InteractionRepository) HasInteraction(ctx context.Context, userID string, contentID int64, typ domain.InteractionType) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM interactions WHERE user_id = ? AND content_item_id = ? AND type = ?)",
		userID, contentID, string(typ))
	if err != nil {
		return false, fmt.Errorf("check interaction: %w", err)
	}
	return exists, nil
}

// ListRecords returns interactions of one type joined with content, most recent first
func (r *InteractionRepository) ListRecords(ctx context.Context, userID string, typ domain.InteractionType, limit int) ([]domain.InteractionRecord, error) {
	query := `
		SELECT i.*,
			c.id AS "c.id", c.provider_type AS "c.provider_type", c.original_id AS "c.original_id",
			c.source_external_id AS "c.source_external_id", c.title AS "c.title",
			c.description AS "c.description", c.thumbnail_url AS "c.thumbnail_url", c.url AS "c.url",
			c.duration AS "c.duration", c.published_at AS "c.published_at",
			c.fetched_at AS "c.fetched_at", c.last_seen_in_feed AS "c.last_seen_in_feed"
		FROM interactions i
		JOIN content_items c ON c.id = i.content_item_id
		WHERE i.user_id = ? AND i.type = ?
		ORDER BY i.updated_at DESC, i.id DESC
		LIMIT ?
	`
	var rows []interactionRecordSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID, string(typ), limit); err != nil {
		return nil, fmt.Errorf("list interaction records: %w", err)
	}
	res := make([]domain.InteractionRecord, len(rows))
	for i := range rows {
		res[i] = domain.InteractionRecord{
			Interaction: rows[i].interactionSQL.toDomain(),
			Content:     rows[i].Content.toDomain(),
		}
	}
	return res, nil
}

// ClearInteractions deletes the user's interactions of the given types, all types if none given
func (r *InteractionRepository) ClearInteractions(ctx context.Context, userID string, types ...domain.InteractionType) (int64, error) {
	query := "DELETE FROM interactions WHERE user_id = ?"
	args := []any{userID}
	if len(types) > 0 {
		q, a, err := sqlx.In(" AND type IN (?)", typeStrings(types))
		if err != nil {
			return 0, fmt.Errorf("build clear query: %w", err)
		}
		query += q
		args = append(args, a...)
	}

	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("clear interactions: %w", err)
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

func typeStrings(types []domain.InteractionType) []string {
	res := make([]string, len(types))
	for i, t := range types {
		res[i] = string(t)
	}
	return res
}

// toDomain converts interactionSQL to domain.Interaction
func (i *interactionSQL) toDomain() domain.Interaction {
	return domain.Interaction{
		ID:             i.ID,
		UserID:         i.UserID,
		ContentItemID:  i.ContentItemID,
		Type:           domain.InteractionType(i.Type),
		WatchDuration:  i.WatchDuration,
		CompletionRate: i.CompletionRate,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
