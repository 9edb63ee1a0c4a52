package provider

import (
	"context"
	"crypto/sha1" //nolint:gosec // used for stable ids, not security
	"encoding/hex"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/feedmix/pkg/domain"
)

// FeedAdapter handles syndication feeds. The canonical source id is the feed URL.
// RSS and PODCAST share the parsing path, podcasts additionally read itunes extensions
// for duration and artwork and fall back to the enclosure as item URL.
type FeedAdapter struct {
	client   *httpClient
	provider domain.ProviderType
}

// NewRSS makes adapter for RSS/Atom feeds
func NewRSS(client *httpClient) *FeedAdapter {
	return &FeedAdapter{client: client, provider: domain.ProviderRSS}
}

// NewPodcast makes adapter for podcast feeds
func NewPodcast(client *httpClient) *FeedAdapter {
	return &FeedAdapter{client: client, provider: domain.ProviderPodcast}
}

// Type returns provider type served by the adapter
func (f *FeedAdapter) Type() domain.ProviderType { return f.provider }

// ValidateSource checks the raw id is a reachable, parsable feed and returns its url as canonical id
func (f *FeedAdapter) ValidateSource(ctx context.Context, rawID string) (domain.SourceValidation, error) {
	canonical, ok := canonicalFeedURL(rawID)
	if !ok {
		return domain.SourceValidation{IsValid: false}, nil
	}

	feed, err := f.parse(ctx, canonical)
	if err != nil {
		var perr *feedParseError
		if errors.As(err, &perr) {
			lgr.Printf("[DEBUG] %s source %s is not a feed: %v", f.provider, canonical, err)
			return domain.SourceValidation{IsValid: false}, nil
		}
		return domain.SourceValidation{}, err
	}

	return domain.SourceValidation{
		IsValid:     true,
		CanonicalID: canonical,
		DisplayName: strings.TrimSpace(feed.Title),
		AvatarURL:   f.feedImage(feed),
	}, nil
}

// FetchRecent returns items published after since, undated items are always included
func (f *FeedAdapter) FetchRecent(ctx context.Context, canonicalID string, since time.Time) ([]domain.NormalizedItem, error) {
	feed, err := f.parse(ctx, canonicalID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.NormalizedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		n := f.normalize(feed, item)
		if !n.PublishedAt.IsZero() && n.PublishedAt.Before(since) {
			continue
		}
		res = append(res, n)
	}
	return res, nil
}

// FetchBacklog returns every item the feed document carries, feeds have no paging
func (f *FeedAdapter) FetchBacklog(ctx context.Context, canonicalID string) ([]domain.NormalizedItem, error) {
	feed, err := f.parse(ctx, canonicalID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.NormalizedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		res = append(res, f.normalize(feed, item))
	}
	return res, nil
}

// GetSourceMetadata returns feed title, description and artwork; subscriber count is unknown for feeds
func (f *FeedAdapter) GetSourceMetadata(ctx context.Context, canonicalID string) (domain.SourceMetadata, error) {
	feed, err := f.parse(ctx, canonicalID)
	if err != nil {
		return domain.SourceMetadata{}, err
	}
	desc := feed.Description
	if desc == "" && feed.ITunesExt != nil {
		desc = feed.ITunesExt.Summary
	}
	return domain.SourceMetadata{
		DisplayName:       strings.TrimSpace(feed.Title),
		Description:       f.client.plainText(desc),
		AvatarURL:         f.feedImage(feed),
		TotalContentCount: int64(len(feed.Items)),
	}, nil
}

// feedParseError marks a document that was fetched but is not a valid feed
type feedParseError struct{ err error }

func (e *feedParseError) Error() string { return "parse feed: " + e.err.Error() }
func (e *feedParseError) Unwrap() error { return e.err }

// parse fetches and parses the feed document
func (f *FeedAdapter) parse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := f.client.getFeed(ctx, f.provider, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, &domain.ProviderError{Provider: f.provider, Err: &feedParseError{err: err}}
	}
	return feed, nil
}

// normalize converts a gofeed item to the common content shape
func (f *FeedAdapter) normalize(feed *gofeed.Feed, item *gofeed.Item) domain.NormalizedItem {
	res := domain.NormalizedItem{
		OriginalID:   itemID(feed, item),
		Title:        strings.TrimSpace(item.Title),
		URL:          item.Link,
		ThumbnailURL: itemImage(item),
	}

	desc := item.Description
	if desc == "" {
		desc = item.Content
	}
	if item.ITunesExt != nil {
		if desc == "" {
			desc = item.ITunesExt.Summary
		}
		res.Duration = durationPtr(item.ITunesExt.Duration, parseClockDuration)
		if res.ThumbnailURL == "" {
			res.ThumbnailURL = item.ITunesExt.Image
		}
	}
	res.Description = f.client.plainText(desc)

	if f.provider == domain.ProviderPodcast {
		if res.URL == "" {
			res.URL = enclosureURL(item, "audio/", "video/")
		}
		if res.ThumbnailURL == "" {
			res.ThumbnailURL = f.feedImage(feed)
		}
	}

	switch {
	case item.PublishedParsed != nil:
		res.PublishedAt = item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		res.PublishedAt = item.UpdatedParsed.UTC()
	}
	return res
}

func (f *FeedAdapter) feedImage(feed *gofeed.Feed) string {
	if feed.Image != nil && feed.Image.URL != "" {
		return feed.Image.URL
	}
	if feed.ITunesExt != nil {
		return feed.ITunesExt.Image
	}
	return ""
}

// itemID picks guid, then link, then a hash of feed and item titles
func itemID(feed *gofeed.Feed, item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	if u := enclosureURL(item, ""); u != "" {
		return u
	}
	h := sha1.Sum([]byte(feed.Title + "\x00" + item.Title + "\x00" + item.Published)) //nolint:gosec // stable id only
	return hex.EncodeToString(h[:])
}

// itemImage checks item image, media:thumbnail and image enclosures
func itemImage(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"thumbnail", "content"} {
			for _, e := range media[name] {
				if u := e.Attrs["url"]; u != "" && (name == "thumbnail" || strings.HasPrefix(e.Attrs["medium"], "image")) {
					return u
				}
			}
		}
	}
	return enclosureURL(item, "image/")
}

// enclosureURL returns url of the first enclosure matching one of the type prefixes, empty prefix matches any
func enclosureURL(item *gofeed.Item, typePrefixes ...string) string {
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		for _, prefix := range typePrefixes {
			if strings.HasPrefix(enc.Type, prefix) {
				return enc.URL
			}
		}
	}
	return ""
}

// canonicalFeedURL normalizes user input to an absolute http(s) url
func canonicalFeedURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	return u.String(), true
}
