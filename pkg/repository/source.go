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

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID              int64      `db:"id"`
	UserID          string     `db:"user_id"`
	ProviderType    string     `db:"provider_type"`
	ExternalID      string     `db:"external_id"`
	DisplayName     string     `db:"display_name"`
	AvatarURL       string     `db:"avatar_url"`
	Muted           bool       `db:"muted"`
	AlwaysSafe      bool       `db:"always_safe"`
	LastFetchAt     *time.Time `db:"last_fetch_at"`
	LastFetchStatus string     `db:"last_fetch_status"`
	LastError       string     `db:"last_error"`
	ErrorCount      int        `db:"error_count"`
	CreatedAt       time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// CreateSource inserts a new source, duplicate (user, provider, external id) is a validation error
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	if src.CreatedAt.IsZero() {
		src.CreatedAt = time.Now().UTC()
	}
	row := &sourceSQL{
		UserID:       src.UserID,
		ProviderType: string(src.ProviderType),
		ExternalID:   src.ExternalID,
		DisplayName:  src.DisplayName,
		AvatarURL:    src.AvatarURL,
		Muted:        src.Muted,
		AlwaysSafe:   src.AlwaysSafe,
		CreatedAt:    src.CreatedAt,
	}

	query := `
		INSERT INTO sources (user_id, provider_type, external_id, display_name, avatar_url, muted, always_safe, created_at)
		VALUES (:user_id, :provider_type, :external_id, :display_name, :avatar_url, :muted, :always_safe, :created_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueError(err) {
			return &domain.ValidationError{Field: "external_id", Message: "source already exists"}
		}
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	src.ID = id
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("source %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return row.toDomain(), nil
}

// GetUserSource retrieves a source by ID, only if owned by the user
func (r *SourceRepository) GetUserSource(ctx context.Context, userID string, id int64) (*domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("source %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user source: %w", err)
	}
	return row.toDomain(), nil
}

// ListSources returns sources of a user, or of all users if userID is empty.
// With activeOnly set muted sources are skipped.
func (r *SourceRepository) ListSources(ctx context.Context, userID string, activeOnly bool) ([]*domain.Source, error) {
	var conds []string
	var args []any
	if userID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, userID)
	}
	if activeOnly {
		conds = append(conds, "muted = 0")
	}

	query := "SELECT * FROM sources"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	res := make([]*domain.Source, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// UpdateSource applies user changes (rename, mute, always-safe) to an owned source
func (r *SourceRepository) UpdateSource(ctx context.Context, userID string, id int64, upd domain.SourceUpdate) error {
	var sets []string
	var args []any
	if upd.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *upd.DisplayName)
	}
	if upd.Muted != nil {
		sets = append(sets, "muted = ?")
		args = append(args, *upd.Muted)
	}
	if upd.AlwaysSafe != nil {
		sets = append(sets, "always_safe = ?")
		args = append(args, *upd.AlwaysSafe)
	}
	if len(sets) == 0 {
		// nothing to change, still verify the source exists
		_, err := r.GetUserSource(ctx, userID, id)
		return err
	}

	query := "UPDATE sources SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update source: %w", err)
	}
	return expectAffected(res, fmt.Sprintf("source %d", id))
}

// DeleteSource removes an owned source. Content items stay, they are shared by natural key.
func (r *SourceRepository) DeleteSource(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	return expectAffected(res, fmt.Sprintf("source %d", id))
}

// UpdateFetchSuccess records a successful fetch
func (r *SourceRepository) UpdateFetchSuccess(ctx context.Context, id int64, at time.Time) error {
	return withLockRetry(ctx, func() error {
		query := `
			UPDATE sources
			SET last_fetch_at = ?,
			    last_fetch_status = ?,
			    last_error = '',
			    error_count = 0
			WHERE id = ?
		`
		if _, err := r.db.ExecContext(ctx, query, at.UTC(), string(domain.FetchStatusSuccess), id); err != nil {
			return fmt.Errorf("update fetch success: %w", err)
		}
		return nil
	})
}

// UpdateFetchError records a failed fetch with its message
func (r *SourceRepository) UpdateFetchError(ctx context.Context, id int64, at time.Time, errMsg string) error {
	return withLockRetry(ctx, func() error {
		query := `
			UPDATE sources
			SET last_fetch_at = ?,
			    last_fetch_status = ?,
			    last_error = ?,
			    error_count = error_count + 1
			WHERE id = ?
		`
		if _, err := r.db.ExecContext(ctx, query, at.UTC(), string(domain.FetchStatusError), errMsg, id); err != nil {
			return fmt.Errorf("update fetch error: %w", err)
		}
		return nil
	})
}

// toDomain converts sourceSQL to domain.Source
func (s *sourceSQL) toDomain() *domain.Source {
	return &domain.Source{
		ID:              s.ID,
		UserID:          s.UserID,
		ProviderType:    domain.ProviderType(s.ProviderType),
		ExternalID:      s.ExternalID,
		DisplayName:     s.DisplayName,
		AvatarURL:       s.AvatarURL,
		Muted:           s.Muted,
		AlwaysSafe:      s.AlwaysSafe,
		LastFetchAt:     s.LastFetchAt,
		LastFetchStatus: domain.FetchStatus(s.LastFetchStatus),
		LastError:       s.LastError,
		ErrorCount:      s.ErrorCount,
		CreatedAt:       s.CreatedAt,
	}
}

// expectAffected returns ErrNotFound if the statement changed no rows
func expectAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
