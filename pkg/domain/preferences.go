package domain

import "time"

// preference defaults, applied when the user never saved preferences
const (
	DefaultBacklogRatio   = 0.2
	DefaultDiversityLimit = 3
	DefaultTheme          = "system"
)

// FilterKeyword is a user's block-list entry, keyword is stored trimmed and lower-cased
type FilterKeyword struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Keyword    string    `json:"keyword"`
	IsWildcard bool      `json:"is_wildcard"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserPreferences holds per-user feed tuning, one row per user
type UserPreferences struct {
	UserID         string    `json:"user_id"`
	MinDuration    *int64    `json:"min_duration"` // seconds, nil is unbounded
	MaxDuration    *int64    `json:"max_duration"` // seconds, nil is unbounded
	BacklogRatio   float64   `json:"backlog_ratio"`
	DiversityLimit int       `json:"diversity_limit"`
	Theme          string    `json:"theme"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultPreferences returns preferences used for users without a stored row
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:         userID,
		BacklogRatio:   DefaultBacklogRatio,
		DiversityLimit: DefaultDiversityLimit,
		Theme:          DefaultTheme,
	}
}

// Validate checks preference bounds and returns a field-level ValidationError
func (p UserPreferences) Validate() error {
	if p.MinDuration != nil && *p.MinDuration < 0 {
		return &ValidationError{Field: "min_duration", Message: "must be non-negative"}
	}
	if p.MaxDuration != nil && *p.MaxDuration < 0 {
		return &ValidationError{Field: "max_duration", Message: "must be non-negative"}
	}
	if p.MinDuration != nil && p.MaxDuration != nil && *p.MinDuration > *p.MaxDuration {
		return &ValidationError{Field: "max_duration", Message: "must not be less than min_duration"}
	}
	if p.BacklogRatio < 0 || p.BacklogRatio > 1 {
		return &ValidationError{Field: "backlog_ratio", Message: "must be between 0 and 1"}
	}
	if p.DiversityLimit < 1 || p.DiversityLimit > 10 {
		return &ValidationError{Field: "diversity_limit", Message: "must be between 1 and 10"}
	}
	return nil
}

// Collection groups saved content for a user
type Collection struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
