package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedmix/pkg/domain"
)

// CollectionRepository handles collections of saved content
type CollectionRepository struct {
	db *sqlx.DB
}

type collectionSQL struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// CreateCollection inserts a new collection, names are unique per user
func (r *CollectionRepository) CreateCollection(ctx context.Context, c *domain.Collection) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, "INSERT INTO collections (user_id, name, created_at) VALUES (?, ?, ?)",
		c.UserID, c.Name, c.CreatedAt)
	if err != nil {
		if isUniqueError(err) {
			return &domain.ValidationError{Field: "name", Message: fmt.Sprintf("collection %q already exists", c.Name)}
		}
		return fmt.Errorf("create collection: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	c.ID = id
	return nil
}

// GetCollection returns a collection owned by the user
func (r *CollectionRepository) GetCollection(ctx context.Context, userID string, id int64) (*domain.Collection, error) {
	var row collectionSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM collections WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collection %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return &domain.Collection{ID: row.ID, UserID: row.UserID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// ListCollections returns user's collections ordered by name
func (r *CollectionRepository) ListCollections(ctx context.Context, userID string) ([]domain.Collection, error) {
	var rows []collectionSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM collections WHERE user_id = ? ORDER BY name", userID); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	res := make([]domain.Collection, len(rows))
	for i, row := range rows {
		res[i] = domain.Collection{ID: row.ID, UserID: row.UserID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return res, nil
}

// AddItem puts a content item into a collection, adding it twice is a no-op
func (r *CollectionRepository) AddItem(ctx context.Context, collectionID, contentID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO collection_items (collection_id, content_item_id, added_at) VALUES (?, ?, ?)",
		collectionID, contentID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("add collection item: %w", err)
	}
	return nil
}

// ListItems returns content of a collection, most recently added first
func (r *CollectionRepository) ListItems(ctx context.Context, collectionID int64) ([]domain.ContentItem, error) {
	query := `
		SELECT c.* FROM content_items c
		JOIN collection_items ci ON ci.content_item_id = c.id
		WHERE ci.collection_id = ?
		ORDER BY ci.added_at DESC, c.id DESC
	`
	var rows []contentSQL
	if err := r.db.SelectContext(ctx, &rows, query, collectionID); err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	res := make([]domain.ContentItem, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}
