package domain

import (
	"fmt"
	"strings"
	"time"
)

// InteractionType is the kind of user action recorded against a content item
type InteractionType string

// interaction types
const (
	InteractionWatched   InteractionType = "WATCHED"
	InteractionSaved     InteractionType = "SAVED"
	InteractionDismissed InteractionType = "DISMISSED"
	InteractionNotNow    InteractionType = "NOT_NOW"
	InteractionBlocked   InteractionType = "BLOCKED"
)

// ParseInteractionType converts a string (e.g. "not-now", "watched") to an InteractionType
func ParseInteractionType(s string) (InteractionType, error) {
	norm := InteractionType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	switch norm {
	case InteractionWatched, InteractionSaved, InteractionDismissed, InteractionNotNow, InteractionBlocked:
		return norm, nil
	case "WATCH":
		return InteractionWatched, nil
	case "SAVE":
		return InteractionSaved, nil
	case "DISMISS":
		return InteractionDismissed, nil
	case "BLOCK":
		return InteractionBlocked, nil
	}
	return "", &ValidationError{Field: "type", Message: fmt.Sprintf("unknown interaction type %q", s)}
}

// Interaction is a recorded user action, at most one per (user, content, type)
type Interaction struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"user_id"`
	ContentItemID  int64           `json:"content_item_id"`
	Type           InteractionType `json:"type"`
	WatchDuration  *int64          `json:"watch_duration,omitempty"`  // seconds, WATCHED only
	CompletionRate *float64        `json:"completion_rate,omitempty"` // 0-1 inclusive, WATCHED only
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WatchDetails are the optional attributes of a WATCHED interaction
type WatchDetails struct {
	WatchDuration  *int64   `json:"watch_duration,omitempty"`
	CompletionRate *float64 `json:"completion_rate,omitempty"`
}

// Validate checks watch details bounds
func (w WatchDetails) Validate() error {
	if w.WatchDuration != nil && *w.WatchDuration < 0 {
		return &ValidationError{Field: "watch_duration", Message: "must be non-negative"}
	}
	if w.CompletionRate != nil && (*w.CompletionRate < 0 || *w.CompletionRate > 1) {
		return &ValidationError{Field: "completion_rate", Message: "must be between 0 and 1"}
	}
	return nil
}

// InteractionRecord is an interaction joined with its content, used for saved and history views
type InteractionRecord struct {
	Interaction
	Content ContentItem `json:"content"`
}
