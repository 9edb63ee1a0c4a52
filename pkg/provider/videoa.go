package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/feedmix/pkg/domain"
)

// VideoAOptions configures the VIDEO_PLATFORM_A data api client
type VideoAOptions struct {
	BaseURL      string
	APIKey       string
	MaxResults   int // page size, the api caps it at 50
	BacklogPages int
}

// VideoA talks to a channel based video platform with a data api similar to YouTube's v3:
// channels, search and videos resources, ISO-8601 durations and quota errors reported as 403.
type VideoA struct {
	client *httpClient
	opts   VideoAOptions
}

type videoAThumbs struct {
	Default struct {
		URL string `json:"url"`
	} `json:"default"`
	Medium struct {
		URL string `json:"url"`
	} `json:"medium"`
	High struct {
		URL string `json:"url"`
	} `json:"high"`
}

func (t videoAThumbs) best() string {
	for _, u := range []string{t.High.URL, t.Medium.URL, t.Default.URL} {
		if u != "" {
			return u
		}
	}
	return ""
}

type videoAChannelsResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string       `json:"title"`
			Description string       `json:"description"`
			Thumbnails  videoAThumbs `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount int64 `json:"subscriberCount,string"`
			VideoCount      int64 `json:"videoCount,string"`
		} `json:"statistics"`
	} `json:"items"`
}

type videoASearchResp struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videoAVideosResp struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string       `json:"title"`
			Description string       `json:"description"`
			PublishedAt time.Time    `json:"publishedAt"`
			Thumbnails  videoAThumbs `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type videoAErrorResp struct {
	Error struct {
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// NewVideoA makes VIDEO_PLATFORM_A adapter
func NewVideoA(client *httpClient, opts VideoAOptions) *VideoA {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.MaxResults <= 0 || opts.MaxResults > 50 {
		opts.MaxResults = 50
	}
	if opts.BacklogPages <= 0 {
		opts.BacklogPages = 4
	}
	return &VideoA{client: client, opts: opts}
}

// Type returns provider type served by the adapter
func (v *VideoA) Type() domain.ProviderType { return domain.ProviderVideoA }

// ValidateSource resolves channel id, "@handle" or channel url to the canonical channel id
func (v *VideoA) ValidateSource(ctx context.Context, rawID string) (domain.SourceValidation, error) {
	params, ok := channelLookup(rawID)
	if !ok {
		return domain.SourceValidation{IsValid: false}, nil
	}
	params.Set("part", "snippet")

	var resp videoAChannelsResp
	if err := v.call(ctx, "channels", params, &resp); err != nil {
		return domain.SourceValidation{}, err
	}
	if len(resp.Items) == 0 {
		return domain.SourceValidation{IsValid: false}, nil
	}
	ch := resp.Items[0]
	return domain.SourceValidation{
		IsValid:     true,
		CanonicalID: ch.ID,
		DisplayName: ch.Snippet.Title,
		AvatarURL:   ch.Snippet.Thumbnails.best(),
	}, nil
}

// FetchRecent returns channel uploads published after since, single page newest first
func (v *VideoA) FetchRecent(ctx context.Context, canonicalID string, since time.Time) ([]domain.NormalizedItem, error) {
	params := url.Values{}
	if !since.IsZero() {
		params.Set("publishedAfter", since.UTC().Format(time.RFC3339))
	}
	return v.fetch(ctx, canonicalID, params, 1)
}

// FetchBacklog walks older uploads up to BacklogPages pages
func (v *VideoA) FetchBacklog(ctx context.Context, canonicalID string) ([]domain.NormalizedItem, error) {
	return v.fetch(ctx, canonicalID, url.Values{}, v.opts.BacklogPages)
}

// GetSourceMetadata returns channel snippet and statistics
func (v *VideoA) GetSourceMetadata(ctx context.Context, canonicalID string) (domain.SourceMetadata, error) {
	params := url.Values{"part": {"snippet,statistics"}, "id": {canonicalID}}
	var resp videoAChannelsResp
	if err := v.call(ctx, "channels", params, &resp); err != nil {
		return domain.SourceMetadata{}, err
	}
	if len(resp.Items) == 0 {
		return domain.SourceMetadata{}, fmt.Errorf("channel %s: %w", canonicalID, domain.ErrNotFound)
	}
	ch := resp.Items[0]
	return domain.SourceMetadata{
		DisplayName:       ch.Snippet.Title,
		Description:       v.client.plainText(ch.Snippet.Description),
		AvatarURL:         ch.Snippet.Thumbnails.best(),
		SubscriberCount:   ch.Statistics.SubscriberCount,
		TotalContentCount: ch.Statistics.VideoCount,
	}, nil
}

// fetch pages through search results and resolves video details for each page
func (v *VideoA) fetch(ctx context.Context, channelID string, extra url.Values, pages int) ([]domain.NormalizedItem, error) {
	var res []domain.NormalizedItem
	pageToken := ""
	for page := 0; page < pages; page++ {
		params := url.Values{
			"part":       {"id"},
			"channelId":  {channelID},
			"order":      {"date"},
			"type":       {"video"},
			"maxResults": {fmt.Sprintf("%d", v.opts.MaxResults)},
		}
		for k, vals := range extra {
			params[k] = vals
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var search videoASearchResp
		if err := v.call(ctx, "search", params, &search); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(search.Items))
		for _, it := range search.Items {
			if it.ID.VideoID != "" {
				ids = append(ids, it.ID.VideoID)
			}
		}
		items, err := v.videos(ctx, ids)
		if err != nil {
			return nil, err
		}
		res = append(res, items...)

		if search.NextPageToken == "" {
			break
		}
		pageToken = search.NextPageToken
	}
	lgr.Printf("[DEBUG] %s channel %s: %d items", domain.ProviderVideoA, channelID, len(res))
	return res, nil
}

// videos loads snippet and duration for the video ids
func (v *VideoA) videos(ctx context.Context, ids []string) ([]domain.NormalizedItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{"part": {"snippet,contentDetails"}, "id": {strings.Join(ids, ",")}}
	var resp videoAVideosResp
	if err := v.call(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}

	res := make([]domain.NormalizedItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		res = append(res, domain.NormalizedItem{
			OriginalID:   it.ID,
			Title:        it.Snippet.Title,
			Description:  v.client.plainText(it.Snippet.Description),
			ThumbnailURL: it.Snippet.Thumbnails.best(),
			URL:          "https://www.youtube.com/watch?v=" + url.QueryEscape(it.ID),
			Duration:     durationPtr(it.ContentDetails.Duration, parseISODuration),
			PublishedAt:  it.Snippet.PublishedAt.UTC(),
		})
	}
	return res, nil
}

func (v *VideoA) call(ctx context.Context, resource string, params url.Values, dest any) error {
	if v.opts.APIKey != "" {
		params.Set("key", v.opts.APIKey)
	}
	u := v.opts.BaseURL + "/" + resource + "?" + params.Encode()
	return v.client.getJSON(ctx, domain.ProviderVideoA, u, nil, v.classify, dest)
}

// classify maps quota and rate limit 403 responses to RateLimitError
func (v *VideoA) classify(status int, body []byte) error {
	if status != http.StatusForbidden {
		return nil
	}
	var er videoAErrorResp
	if err := json.Unmarshal(body, &er); err != nil {
		return nil
	}
	for _, e := range er.Error.Errors {
		switch e.Reason {
		case "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded", "dailyLimitExceeded":
			return &domain.RateLimitError{Provider: domain.ProviderVideoA, Message: e.Reason}
		}
	}
	return nil
}

// channelLookup builds channels query parameters from raw user input
func channelLookup(raw string) (url.Values, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, false
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		switch {
		case len(parts) >= 2 && parts[0] == "channel":
			raw = parts[1]
		case len(parts) >= 1 && strings.HasPrefix(parts[0], "@"):
			raw = parts[0]
		default:
			return nil, false
		}
	}
	if strings.HasPrefix(raw, "@") {
		if len(raw) == 1 {
			return nil, false
		}
		return url.Values{"forHandle": {raw}}, true
	}
	return url.Values{"id": {raw}}, true
}
