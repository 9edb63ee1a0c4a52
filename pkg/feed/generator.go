package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/feedmix/pkg/domain"
)

// Generator renders user feeds as RSS
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 document from the user's feed items, keeping their order
func (g *Generator) GenerateRSS(userID string, items []domain.FeedItem) (string, error) {
	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Media:   "http://search.yahoo.com/mrss/",
		Channel: &RSSChannel{
			Title:         "Feedmix - " + userID,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Personal feed of %s, %d items", userID, len(items)),
			AtomLink:      &AtomLink{Href: g.baseURL + "/api/v1/feed/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// convertToRSSItem converts a feed item to an RSS item
func (g *Generator) convertToRSSItem(item domain.FeedItem) *RSSItem {
	desc := item.Description
	if item.Duration != nil {
		desc = fmt.Sprintf("[%s] %s", formatDuration(*item.Duration), desc)
	}

	res := &RSSItem{
		Title:       item.Title,
		Link:        item.URL,
		GUID:        RSSGUID{Value: fmt.Sprintf("feedmix:%d", item.ContentID)},
		Description: strings.TrimSpace(desc),
		PubDate:     item.PublishedAt.Format(time.RFC1123Z),
		Categories:  []string{item.SourceName, string(item.ProviderType)},
	}
	if item.ThumbnailURL != "" {
		res.Thumbnail = &MediaThumbnail{URL: item.ThumbnailURL}
	}
	return res
}

// formatDuration renders seconds as h:mm:ss or m:ss
func formatDuration(secs int64) string {
	d := time.Duration(secs) * time.Second
	h, m, s := int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
