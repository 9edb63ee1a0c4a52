package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedmix/pkg/domain"
)

// ContentRepository handles content item operations. Items are keyed by (provider_type, original_id)
// and shared across all users subscribed to the same external source.
type ContentRepository struct {
	db *sqlx.DB
}

// contentSQL represents a content item for SQL operations
type contentSQL struct {
	ID               int64     `db:"id"`
	ProviderType     string    `db:"provider_type"`
	OriginalID       string    `db:"original_id"`
	SourceExternalID string    `db:"source_external_id"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	ThumbnailURL     string    `db:"thumbnail_url"`
	URL              string    `db:"url"`
	Duration         *int64    `db:"duration"`
	PublishedAt      time.Time `db:"published_at"`
	FetchedAt        time.Time `db:"fetched_at"`
	LastSeenInFeed   time.Time `db:"last_seen_in_feed"`
}

// candidateSQL is a content row joined with the subscribing source
type candidateSQL struct {
	contentSQL
	SourceID   int64  `db:"source_id"`
	SourceName string `db:"source_name"`
	AlwaysSafe bool   `db:"always_safe"`
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// UpsertItems stores items observed for an external source. Known natural keys only get
// last_seen_in_feed touched, unknown keys are inserted. Every item is linked to the source,
// so an item first seen through another source still reaches this source's subscribers.
// Returns the number of inserted rows.
// Insertion uses ON CONFLICT DO NOTHING, so concurrent fetches of the same source never
// produce duplicates: a row lost to a racing writer is touched instead of counted.
func (r *ContentRepository) UpsertItems(ctx context.Context, provider domain.ProviderType, sourceExternalID string,
	items []domain.NormalizedItem, now time.Time) (inserted int, err error) {
	if len(items) == 0 {
		return 0, nil
	}
	now = now.UTC()

	// dedup within the batch, first occurrence wins
	uniq := make([]domain.NormalizedItem, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.OriginalID == "" || seen[it.OriginalID] {
			continue
		}
		seen[it.OriginalID] = true
		uniq = append(uniq, it)
	}
	ids := make([]string, len(uniq))
	for i, it := range uniq {
		ids[i] = it.OriginalID
	}

	err = withLockRetry(ctx, func() error {
		inserted = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		existing, err := findExisting(ctx, tx, provider, ids)
		if err != nil {
			return err
		}

		var touch []string
		for _, it := range uniq {
			if existing[it.OriginalID] {
				touch = append(touch, it.OriginalID)
				continue
			}
			ok, err := insertItem(ctx, tx, provider, sourceExternalID, it, now)
			if err != nil {
				return err
			}
			if !ok {
				touch = append(touch, it.OriginalID) // lost a race to another writer
				continue
			}
			inserted++
		}

		if err := touchItems(ctx, tx, provider, touch, now); err != nil {
			return err
		}
		if err := linkItems(ctx, tx, provider, sourceExternalID, uniq); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("upsert items: %w", err)
	}
	return inserted, nil
}

// FindExisting returns the set of original ids already stored for the provider
func (r *ContentRepository) FindExisting(ctx context.Context, provider domain.ProviderType, originalIDs []string) (map[string]bool, error) {
	return findExisting(ctx, r.db, provider, originalIDs)
}

// GetItem retrieves a content item by ID
func (r *ContentRepository) GetItem(ctx context.Context, id int64) (*domain.ContentItem, error) {
	var row contentSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM content_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	res := row.toDomain()
	return &res, nil
}

// GetItemByKey retrieves a content item by its natural key
func (r *ContentRepository) GetItemByKey(ctx context.Context, key domain.ContentKey) (*domain.ContentItem, error) {
	var row contentSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM content_items WHERE provider_type = ? AND original_id = ?",
		string(key.ProviderType), key.OriginalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("content %s/%s: %w", key.ProviderType, key.OriginalID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get content by key: %w", err)
	}
	res := row.toDomain()
	return &res, nil
}

// CountBySource returns the number of stored items for an external source
func (r *ContentRepository) CountBySource(ctx context.Context, provider domain.ProviderType, sourceExternalID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM content_sources WHERE provider_type = ? AND source_external_id = ?",
		string(provider), sourceExternalID)
	if err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return count, nil
}

// ListCandidates returns eligible content of the user's non-muted sources, newest first.
// Dismissed, blocked and watched items, NOT_NOW items updated after q.NotNowSince and items
// outside the duration bounds are skipped before the limit applies. An item reachable through
// several sources of the user is returned once, for the source with the lowest id.
func (r *ContentRepository) ListCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Candidate, error) {
	conds := []string{"s.user_id = ?", "s.muted = 0"}
	args := []any{q.UserID}
	if !q.PublishedAfter.IsZero() {
		conds = append(conds, "c.published_at >= ?")
		args = append(args, q.PublishedAfter.UTC())
	}
	if !q.PublishedBefore.IsZero() {
		conds = append(conds, "c.published_at < ?")
		args = append(args, q.PublishedBefore.UTC())
	}
	if q.MinDuration != nil {
		conds = append(conds, "(c.duration IS NULL OR c.duration >= ?)")
		args = append(args, *q.MinDuration)
	}
	if q.MaxDuration != nil {
		conds = append(conds, "(c.duration IS NULL OR c.duration <= ?)")
		args = append(args, *q.MaxDuration)
	}
	conds = append(conds, `NOT EXISTS (
			SELECT 1 FROM interactions i
			WHERE i.user_id = s.user_id AND i.content_item_id = c.id
				AND (i.type IN (?, ?, ?) OR (i.type = ? AND i.updated_at > ?))
		)`)
	args = append(args, string(domain.InteractionDismissed), string(domain.InteractionBlocked),
		string(domain.InteractionWatched), string(domain.InteractionNotNow), q.NotNowSince.UTC())

	// sqlite takes bare columns from the row holding MIN(s.id)
	query := `
		SELECT c.id, c.provider_type, c.original_id, cs.source_external_id, c.title, c.description,
			c.thumbnail_url, c.url, c.duration, c.published_at, c.fetched_at, c.last_seen_in_feed,
			MIN(s.id) AS source_id,
			CASE WHEN s.display_name != '' THEN s.display_name ELSE s.external_id END AS source_name,
			s.always_safe AS always_safe
		FROM content_items c
		JOIN content_sources cs ON cs.provider_type = c.provider_type AND cs.original_id = c.original_id
		JOIN sources s ON s.provider_type = cs.provider_type AND s.external_id = cs.source_external_id
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY c.id
		ORDER BY c.published_at DESC, c.id DESC
		LIMIT ?
	`
	args = append(args, q.Limit)

	var rows []candidateSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	res := make([]domain.Candidate, len(rows))
	for i, row := range rows {
		res[i] = domain.Candidate{
			ContentItem: row.toDomain(),
			SourceID:    row.SourceID,
			SourceName:  row.SourceName,
			AlwaysSafe:  row.AlwaysSafe,
		}
	}
	return res, nil
}

// findExisting looks up stored original ids in batches of maxBatchParams
func findExisting(ctx context.Context, q sqlx.QueryerContext, provider domain.ProviderType, ids []string) (map[string]bool, error) {
	res := make(map[string]bool, len(ids))
	for _, chunk := range chunkStrings(ids, maxBatchParams) {
		query, args, err := sqlx.In("SELECT original_id FROM content_items WHERE provider_type = ? AND original_id IN (?)",
			string(provider), chunk)
		if err != nil {
			return nil, fmt.Errorf("build lookup query: %w", err)
		}
		var found []string
		if err := sqlx.SelectContext(ctx, q, &found, query, args...); err != nil {
			return nil, fmt.Errorf("lookup existing content: %w", err)
		}
		for _, id := range found {
			res[id] = true
		}
	}
	return res, nil
}

// insertItem inserts a single item unless its natural key exists, reports whether a row was inserted
func insertItem(ctx context.Context, tx *sqlx.Tx, provider domain.ProviderType, sourceExternalID string,
	it domain.NormalizedItem, now time.Time) (bool, error) {
	query := `
		INSERT INTO content_items (
			provider_type, original_id, source_external_id, title, description,
			thumbnail_url, url, duration, published_at, fetched_at, last_seen_in_feed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(provider_type, original_id) DO NOTHING
	`
	published := it.PublishedAt.UTC()
	if published.IsZero() {
		published = now
	}
	res, err := tx.ExecContext(ctx, query, string(provider), it.OriginalID, sourceExternalID, it.Title, it.Description,
		it.ThumbnailURL, it.URL, it.Duration, published, now, now)
	if err != nil {
		return false, fmt.Errorf("insert content %s: %w", it.OriginalID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// linkItems records that items were seen through the source, known links are kept as is
func linkItems(ctx context.Context, tx *sqlx.Tx, provider domain.ProviderType, sourceExternalID string,
	items []domain.NormalizedItem) error {
	query := `INSERT INTO content_sources (provider_type, original_id, source_external_id) VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, query, string(provider), it.OriginalID, sourceExternalID); err != nil {
			return fmt.Errorf("link content %s: %w", it.OriginalID, err)
		}
	}
	return nil
}

// touchItems refreshes last_seen_in_feed for known items without changing their content
func touchItems(ctx context.Context, tx *sqlx.Tx, provider domain.ProviderType, ids []string, now time.Time) error {
	for _, chunk := range chunkStrings(ids, maxBatchParams) {
		query, args, err := sqlx.In("UPDATE content_items SET last_seen_in_feed = ? WHERE provider_type = ? AND original_id IN (?)",
			now, string(provider), chunk)
		if err != nil {
			return fmt.Errorf("build touch query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("touch content: %w", err)
		}
	}
	return nil
}

// toDomain converts contentSQL to domain.ContentItem
func (c *contentSQL) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:               c.ID,
		ProviderType:     domain.ProviderType(c.ProviderType),
		OriginalID:       c.OriginalID,
		SourceExternalID: c.SourceExternalID,
		Title:            c.Title,
		Description:      c.Description,
		ThumbnailURL:     c.ThumbnailURL,
		URL:              c.URL,
		Duration:         c.Duration,
		PublishedAt:      c.PublishedAt,
		FetchedAt:        c.FetchedAt,
		LastSeenInFeed:   c.LastSeenInFeed,
	}
}
