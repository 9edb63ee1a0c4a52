package feed

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")
	generator.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }

	pubTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.FeedItem{
		{
			ContentID:    1,
			SourceID:     10,
			SourceName:   "Go Channel",
			ProviderType: domain.ProviderVideoA,
			Title:        "Concurrency patterns",
			Description:  "Talk about pipelines",
			ThumbnailURL: "https://img.example.com/1.jpg",
			URL:          "https://www.youtube.com/watch?v=abc",
			Duration:     int64p(3725),
			PublishedAt:  pubTime,
		},
		{
			ContentID:    2,
			SourceID:     20,
			SourceName:   "Blog",
			ProviderType: domain.ProviderRSS,
			Title:        "Release notes & more",
			URL:          "https://blog.example.com/post",
			PublishedAt:  pubTime.Add(-time.Hour),
		},
	}

	t.Run("generate RSS", func(t *testing.T) {
		rss, err := generator.GenerateRSS("alice", items)
		require.NoError(t, err)

		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:media="http://search.yahoo.com/mrss/">`)
		assert.Contains(t, rss, `<title>Feedmix - alice</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<description>Personal feed of alice, 2 items</description>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/api/v1/feed/rss" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<lastBuildDate>Tue, 02 Jan 2024 00:00:00 +0000</lastBuildDate>`)

		assert.Contains(t, rss, `<title>Concurrency patterns</title>`)
		assert.Contains(t, rss, `<guid isPermaLink="false">feedmix:1</guid>`)
		assert.Contains(t, rss, `<description>[1:02:05] Talk about pipelines</description>`)
		assert.Contains(t, rss, `<category>Go Channel</category>`)
		assert.Contains(t, rss, `<category>VIDEO_PLATFORM_A</category>`)
		assert.Contains(t, rss, `<media:thumbnail url="https://img.example.com/1.jpg"></media:thumbnail>`)
		assert.Contains(t, rss, `<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>`)

		assert.Contains(t, rss, `<title>Release notes &amp; more</title>`)
		assert.Contains(t, rss, `<guid isPermaLink="false">feedmix:2</guid>`)
		assert.Contains(t, rss, `<description></description>`)
	})

	t.Run("order is preserved", func(t *testing.T) {
		rss, err := generator.GenerateRSS("alice", items)
		require.NoError(t, err)
		var doc struct {
			Items []struct {
				Title string `xml:"title"`
			} `xml:"channel>item"`
		}
		require.NoError(t, xml.Unmarshal([]byte(rss), &doc))
		require.Len(t, doc.Items, 2)
		assert.Equal(t, "Concurrency patterns", doc.Items[0].Title)
		assert.Equal(t, "Release notes & more", doc.Items[1].Title)
	})

	t.Run("empty feed", func(t *testing.T) {
		rss, err := generator.GenerateRSS("bob", nil)
		require.NoError(t, err)
		assert.Contains(t, rss, `<description>Personal feed of bob, 0 items</description>`)
		assert.NotContains(t, rss, "<item>")
	})
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.secs))
	}
}
