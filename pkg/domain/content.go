package domain

import "time"

// ContentKey is the natural key of a content item
type ContentKey struct {
	ProviderType ProviderType
	OriginalID   string
}

// NormalizedItem is a provider item converted to the common content shape
type NormalizedItem struct {
	OriginalID   string
	Title        string
	Description  string
	ThumbnailURL string
	URL          string
	Duration     *int64 // whole seconds, nil if unknown
	PublishedAt  time.Time
}

// ContentItem is a deduplicated piece of content shared by all subscribers of a source
type ContentItem struct {
	ID               int64        `json:"id"`
	ProviderType     ProviderType `json:"provider_type"`
	OriginalID       string       `json:"original_id"`
	SourceExternalID string       `json:"source_external_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	ThumbnailURL     string       `json:"thumbnail_url"`
	URL              string       `json:"url"`
	Duration         *int64       `json:"duration,omitempty"`
	PublishedAt      time.Time    `json:"published_at"`
	FetchedAt        time.Time    `json:"fetched_at"`
	LastSeenInFeed   time.Time    `json:"last_seen_in_feed"`
}

// Key returns the natural key of the item
func (c ContentItem) Key() ContentKey {
	return ContentKey{ProviderType: c.ProviderType, OriginalID: c.OriginalID}
}

// Candidate is a content item joined with the user's source it came through
type Candidate struct {
	ContentItem
	SourceID   int64
	SourceName string
	AlwaysSafe bool
}

// CandidateQuery selects a user's eligible candidates. Hidden items and items outside the duration
// bounds are skipped by the store, so Limit counts only items that can make it into the feed.
type CandidateQuery struct {
	UserID          string
	PublishedAfter  time.Time // inclusive, zero is unbounded
	PublishedBefore time.Time // exclusive, zero is unbounded
	NotNowSince     time.Time // NOT_NOW updated after it still hides the item
	MinDuration     *int64    // items with unknown duration always pass
	MaxDuration     *int64
	Limit           int
}

// FeedItem is a single entry of a computed user feed
type FeedItem struct {
	ContentID    int64        `json:"content_id"`
	SourceID     int64        `json:"source_id"`
	SourceName   string       `json:"source_name"`
	ProviderType ProviderType `json:"provider_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ThumbnailURL string       `json:"thumbnail_url"`
	URL          string       `json:"url"`
	Duration     *int64       `json:"duration,omitempty"`
	PublishedAt  time.Time    `json:"published_at"`
	Backlog      bool         `json:"backlog"`
}
