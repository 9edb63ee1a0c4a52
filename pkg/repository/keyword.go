package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedmix/pkg/domain"
)

// KeywordRepository handles user filter keywords
type KeywordRepository struct {
	db *sqlx.DB
}

type keywordSQL struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	Keyword    string    `db:"keyword"`
	IsWildcard bool      `db:"is_wildcard"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *sqlx.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// CreateKeyword inserts an already normalized keyword, duplicates are rejected with a validation error
func (r *KeywordRepository) CreateKeyword(ctx context.Context, kw *domain.FilterKeyword) error {
	if kw.CreatedAt.IsZero() {
		kw.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO filter_keywords (user_id, keyword, is_wildcard, created_at) VALUES (?, ?, ?, ?)",
		kw.UserID, kw.Keyword, kw.IsWildcard, kw.CreatedAt)
	if err != nil {
		if isUniqueError(err) {
			return &domain.ValidationError{Field: "keyword", Message: fmt.Sprintf("%q already exists", kw.Keyword)}
		}
		return fmt.Errorf("create keyword: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	kw.ID = id
	return nil
}

// ListKeywords returns all keywords of the user
func (r *KeywordRepository) ListKeywords(ctx context.Context, userID string) ([]domain.FilterKeyword, error) {
	var rows []keywordSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM filter_keywords WHERE user_id = ? ORDER BY keyword", userID); err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	res := make([]domain.FilterKeyword, len(rows))
	for i, row := range rows {
		res[i] = domain.FilterKeyword{
			ID:         row.ID,
			UserID:     row.UserID,
			Keyword:    row.Keyword,
			IsWildcard: row.IsWildcard,
			CreatedAt:  row.CreatedAt,
		}
	}
	return res, nil
}

// DeleteKeyword removes a keyword owned by the user
func (r *KeywordRepository) DeleteKeyword(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM filter_keywords WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}
	return expectAffected(res, fmt.Sprintf("keyword %d", id))
}
