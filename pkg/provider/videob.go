package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/umputun/feedmix/pkg/domain"
)

// VideoBOptions configures the VIDEO_PLATFORM_B api client
type VideoBOptions struct {
	BaseURL      string
	Token        string
	PerPage      int
	BacklogPages int
}

// VideoB talks to a user based video platform api similar to Vimeo's:
// users and their videos, durations in integer seconds, bearer token auth.
type VideoB struct {
	client *httpClient
	opts   VideoBOptions
}

type videoBPictures struct {
	Sizes []struct {
		Width int    `json:"width"`
		Link  string `json:"link"`
	} `json:"sizes"`
}

// largest returns link of the widest picture
func (p videoBPictures) largest() string {
	res, width := "", -1
	for _, s := range p.Sizes {
		if s.Width > width && s.Link != "" {
			res, width = s.Link, s.Width
		}
	}
	return res
}

type videoBUser struct {
	URI      string         `json:"uri"`
	Name     string         `json:"name"`
	Bio      string         `json:"bio"`
	Pictures videoBPictures `json:"pictures"`
	Metadata struct {
		Connections struct {
			Followers struct {
				Total int64 `json:"total"`
			} `json:"followers"`
			Videos struct {
				Total int64 `json:"total"`
			} `json:"videos"`
		} `json:"connections"`
	} `json:"metadata"`
}

type videoBVideo struct {
	URI         string         `json:"uri"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	Duration    *int64         `json:"duration"`
	CreatedTime time.Time      `json:"created_time"`
	ReleaseTime *time.Time     `json:"release_time"`
	Pictures    videoBPictures `json:"pictures"`
}

type videoBVideosResp struct {
	Data   []videoBVideo `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

// NewVideoB makes VIDEO_PLATFORM_B adapter
func NewVideoB(client *httpClient, opts VideoBOptions) *VideoB {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.vimeo.com"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.PerPage <= 0 || opts.PerPage > 100 {
		opts.PerPage = 50
	}
	if opts.BacklogPages <= 0 {
		opts.BacklogPages = 4
	}
	return &VideoB{client: client, opts: opts}
}

// Type returns provider type served by the adapter
func (v *VideoB) Type() domain.ProviderType { return domain.ProviderVideoB }

// ValidateSource resolves user id, name or profile url to the numeric user id
func (v *VideoB) ValidateSource(ctx context.Context, rawID string) (domain.SourceValidation, error) {
	id, ok := videoBUserID(rawID)
	if !ok {
		return domain.SourceValidation{IsValid: false}, nil
	}
	user, err := v.user(ctx, id)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return domain.SourceValidation{IsValid: false}, nil
		}
		return domain.SourceValidation{}, err
	}
	return domain.SourceValidation{
		IsValid:     true,
		CanonicalID: path.Base(user.URI),
		DisplayName: user.Name,
		AvatarURL:   user.Pictures.largest(),
	}, nil
}

// FetchRecent returns videos newer than since. Results come sorted by date, so paging stops
// at the first older video.
func (v *VideoB) FetchRecent(ctx context.Context, canonicalID string, since time.Time) ([]domain.NormalizedItem, error) {
	var res []domain.NormalizedItem
	err := v.videos(ctx, canonicalID, v.opts.BacklogPages, func(it domain.NormalizedItem) bool {
		if it.PublishedAt.Before(since) {
			return false
		}
		res = append(res, it)
		return true
	})
	return res, err
}

// FetchBacklog returns up to BacklogPages pages of videos
func (v *VideoB) FetchBacklog(ctx context.Context, canonicalID string) ([]domain.NormalizedItem, error) {
	var res []domain.NormalizedItem
	err := v.videos(ctx, canonicalID, v.opts.BacklogPages, func(it domain.NormalizedItem) bool {
		res = append(res, it)
		return true
	})
	return res, err
}

// GetSourceMetadata returns user profile and connection totals
func (v *VideoB) GetSourceMetadata(ctx context.Context, canonicalID string) (domain.SourceMetadata, error) {
	user, err := v.user(ctx, canonicalID)
	if err != nil {
		return domain.SourceMetadata{}, err
	}
	return domain.SourceMetadata{
		DisplayName:       user.Name,
		Description:       v.client.plainText(user.Bio),
		AvatarURL:         user.Pictures.largest(),
		SubscriberCount:   user.Metadata.Connections.Followers.Total,
		TotalContentCount: user.Metadata.Connections.Videos.Total,
	}, nil
}

func (v *VideoB) user(ctx context.Context, id string) (videoBUser, error) {
	var user videoBUser
	err := v.client.getJSON(ctx, domain.ProviderVideoB, v.opts.BaseURL+"/users/"+url.PathEscape(id), v.headers(), nil, &user)
	return user, err
}

// videos pages through user's videos newest first, calling fn for each until it returns false
func (v *VideoB) videos(ctx context.Context, userID string, pages int, fn func(domain.NormalizedItem) bool) error {
	next := fmt.Sprintf("%s/users/%s/videos?sort=date&direction=desc&per_page=%d",
		v.opts.BaseURL, url.PathEscape(userID), v.opts.PerPage)
	for page := 0; page < pages && next != ""; page++ {
		var resp videoBVideosResp
		if err := v.client.getJSON(ctx, domain.ProviderVideoB, next, v.headers(), nil, &resp); err != nil {
			return err
		}
		for _, vid := range resp.Data {
			if !fn(v.normalize(vid)) {
				return nil
			}
		}
		next = v.nextURL(resp.Paging.Next)
	}
	return nil
}

func (v *VideoB) normalize(vid videoBVideo) domain.NormalizedItem {
	published := vid.CreatedTime
	if vid.ReleaseTime != nil && !vid.ReleaseTime.IsZero() {
		published = *vid.ReleaseTime
	}
	return domain.NormalizedItem{
		OriginalID:   path.Base(vid.URI),
		Title:        vid.Name,
		Description:  v.client.plainText(vid.Description),
		ThumbnailURL: vid.Pictures.largest(),
		URL:          vid.Link,
		Duration:     vid.Duration,
		PublishedAt:  published.UTC(),
	}
}

// nextURL resolves the api's relative paging link
func (v *VideoB) nextURL(next string) string {
	if next == "" || strings.Contains(next, "://") {
		return next
	}
	base, err := url.Parse(v.opts.BaseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func (v *VideoB) headers() map[string]string {
	res := map[string]string{"Accept": "application/vnd.vimeo.*+json;version=3.4"}
	if v.opts.Token != "" {
		res["Authorization"] = "Bearer " + v.opts.Token
	}
	return res
}

// videoBUserID extracts user id or name from raw input or a profile url
func videoBUserID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		raw = parts[len(parts)-1]
	}
	if rest, ok := strings.CutPrefix(raw, "user"); ok && rest != "" && strings.Trim(rest, "0123456789") == "" {
		raw = rest
	}
	if raw == "" || strings.ContainsAny(raw, "/?# ") {
		return "", false
	}
	return raw, true
}
