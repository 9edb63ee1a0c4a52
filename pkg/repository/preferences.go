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

// PreferencesRepository handles per-user feed preferences
type PreferencesRepository struct {
	db *sqlx.DB
}

type preferencesSQL struct {
	UserID         string    `db:"user_id"`
	MinDuration    *int64    `db:"min_duration"`
	MaxDuration    *int64    `db:"max_duration"`
	BacklogRatio   float64   `db:"backlog_ratio"`
	DiversityLimit int       `db:"diversity_limit"`
	Theme          string    `db:"theme"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *sqlx.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetPreferences returns stored preferences or defaults if the user has none
func (r *PreferencesRepository) GetPreferences(ctx context.Context, userID string) (domain.UserPreferences, error) {
	var row preferencesSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM user_preferences WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPreferences(userID), nil
	}
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return domain.UserPreferences{
		UserID:         row.UserID,
		MinDuration:    row.MinDuration,
		MaxDuration:    row.MaxDuration,
		BacklogRatio:   row.BacklogRatio,
		DiversityLimit: row.DiversityLimit,
		Theme:          row.Theme,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

// UpsertPreferences stores preferences, replacing the existing row
func (r *PreferencesRepository) UpsertPreferences(ctx context.Context, prefs domain.UserPreferences) error {
	if prefs.UpdatedAt.IsZero() {
		prefs.UpdatedAt = time.Now().UTC()
	}
	row := preferencesSQL{
		UserID:         prefs.UserID,
		MinDuration:    prefs.MinDuration,
		MaxDuration:    prefs.MaxDuration,
		BacklogRatio:   prefs.BacklogRatio,
		DiversityLimit: prefs.DiversityLimit,
		Theme:          prefs.Theme,
		UpdatedAt:      prefs.UpdatedAt,
	}
	query := `
		INSERT INTO user_preferences (user_id, min_duration, max_duration, backlog_ratio, diversity_limit, theme, updated_at)
		VALUES (:user_id, :min_duration, :max_duration, :backlog_ratio, :diversity_limit, :theme, :updated_at)
		ON CONFLICT(user_id) DO UPDATE SET
			min_duration = excluded.min_duration,
			max_duration = excluded.max_duration,
			backlog_ratio = excluded.backlog_ratio,
			diversity_limit = excluded.diversity_limit,
			theme = excluded.theme,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
