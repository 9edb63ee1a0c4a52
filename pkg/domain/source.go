package domain

import (
	"fmt"
	"strings"
	"time"
)

// ProviderType identifies the external provider a source belongs to
type ProviderType string

// supported provider types, closed set
const (
	ProviderVideoA  ProviderType = "VIDEO_PLATFORM_A"
	ProviderVideoB  ProviderType = "VIDEO_PLATFORM_B"
	ProviderRSS     ProviderType = "RSS"
	ProviderPodcast ProviderType = "PODCAST"
)

// ProviderTypes lists all known provider types
var ProviderTypes = []ProviderType{ProviderVideoA, ProviderVideoB, ProviderRSS, ProviderPodcast}

// ParseProviderType converts a string to a known ProviderType, case-insensitive
func ParseProviderType(s string) (ProviderType, error) {
	up := ProviderType(strings.ToUpper(strings.TrimSpace(s)))
	for _, p := range ProviderTypes {
		if p == up {
			return p, nil
		}
	}
	return "", &ValidationError{Field: "provider_type", Message: fmt.Sprintf("unknown provider type %q", s)}
}

// FetchStatus is the outcome of the last ingestion attempt for a source
type FetchStatus string

// fetch statuses, empty status means the source was never fetched
const (
	FetchStatusSuccess FetchStatus = "success"
	FetchStatusError   FetchStatus = "error"
)

// Source is a user's subscription to an external content provider
type Source struct {
	ID              int64        `json:"id"`
	UserID          string       `json:"user_id"`
	ProviderType    ProviderType `json:"provider_type"`
	ExternalID      string       `json:"external_id"` // canonical id returned by the adapter
	DisplayName     string       `json:"display_name"`
	AvatarURL       string       `json:"avatar_url"`
	Muted           bool         `json:"muted"`
	AlwaysSafe      bool         `json:"always_safe"` // bypasses keyword filters, duration bounds still apply
	LastFetchAt     *time.Time   `json:"last_fetch_at,omitempty"`
	LastFetchStatus FetchStatus  `json:"last_fetch_status,omitempty"`
	LastError       string       `json:"last_error,omitempty"`
	ErrorCount      int          `json:"error_count"`
	CreatedAt       time.Time    `json:"created_at"`
}

// SourceUpdate holds optional changes to a source, nil fields are left untouched
type SourceUpdate struct {
	DisplayName *string `json:"display_name,omitempty"`
	Muted       *bool   `json:"muted,omitempty"`
	AlwaysSafe  *bool   `json:"always_safe,omitempty"`
}

// SourceMetadata describes a source as reported by its provider
type SourceMetadata struct {
	DisplayName       string `json:"display_name"`
	Description       string `json:"description"`
	AvatarURL         string `json:"avatar_url"`
	SubscriberCount   int64  `json:"subscriber_count"`
	TotalContentCount int64  `json:"total_content_count"`
}

// SourceValidation is the result of validating a raw source identifier with a provider
type SourceValidation struct {
	IsValid     bool
	CanonicalID string
	DisplayName string
	AvatarURL   string
}

// BatchStats summarizes a batch ingestion run
type BatchStats struct {
	RunID         string        `json:"run_id"`
	TotalSources  int           `json:"total_sources"`
	SuccessCount  int           `json:"success_count"`
	ErrorCount    int           `json:"error_count"`
	NewItemsCount int           `json:"new_items_count"`
	Duration      time.Duration `json:"duration"`
}
