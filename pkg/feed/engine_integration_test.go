package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/cache"
	"github.com/umputun/feedmix/pkg/domain"
	"github.com/umputun/feedmix/pkg/repository"
)

func TestEngine_WithRepositories(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	feedCache, err := cache.New[[]domain.FeedItem](100, time.Minute)
	require.NoError(t, err)

	now := time.Now().UTC()
	srcA := &domain.Source{UserID: "u1", ProviderType: domain.ProviderRSS, ExternalID: "feed-a", DisplayName: "A"}
	srcB := &domain.Source{UserID: "u1", ProviderType: domain.ProviderRSS, ExternalID: "feed-b", DisplayName: "B"}
	require.NoError(t, repos.Source.CreateSource(ctx, srcA))
	require.NoError(t, repos.Source.CreateSource(ctx, srcB))

	// items of a source are two hours apart, offset interleaves sources in time
	add := func(src *domain.Source, offset int, ids ...string) {
		items := make([]domain.NormalizedItem, len(ids))
		for i, id := range ids {
			items[i] = domain.NormalizedItem{OriginalID: id, Title: "title " + id, URL: "https://example.com/" + id,
				PublishedAt: now.Add(-time.Duration(offset+2*i) * time.Hour)}
		}
		_, err := repos.Content.UpsertItems(ctx, src.ProviderType, src.ExternalID, items, now)
		require.NoError(t, err)
	}
	add(srcA, 1, "a1", "a2")
	add(srcB, 2, "b1", "b2", "b3")

	prefs := domain.DefaultPreferences("u1")
	prefs.DiversityLimit = 2
	prefs.BacklogRatio = 0
	require.NoError(t, repos.Preferences.UpsertPreferences(ctx, prefs))

	e := NewEngine(Config{Candidates: repos.Content, Interactions: repos.Interaction, Keywords: repos.Keyword,
		Preferences: repos.Preferences, Cache: feedCache})

	items, err := e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 4)
	titles := []string{}
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"title a1", "title b1", "title a2", "title b2"}, titles)

	// dismiss without refresh, cached feed is returned unchanged
	dismissed := items[0].ContentID
	require.NoError(t, repos.Interaction.UpsertInteraction(ctx, &domain.Interaction{UserID: "u1",
		ContentItemID: dismissed, Type: domain.InteractionDismissed}))
	cached, err := e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, cached)

	// after refresh the dismissed item is gone
	e.RefreshFeed("u1")
	fresh, err := e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	for _, it := range fresh {
		assert.NotEqual(t, dismissed, it.ContentID)
	}
	assert.Len(t, fresh, 3)

	// muting a source removes its items from candidates
	muted := true
	require.NoError(t, repos.Source.UpdateSource(ctx, "u1", srcB.ID, domain.SourceUpdate{Muted: &muted}))
	e.RefreshFeed("u1")
	fresh, err = e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, srcA.ID, fresh[0].SourceID)

	// keyword filter applies after refresh
	require.NoError(t, repos.Keyword.CreateKeyword(ctx, &domain.FilterKeyword{UserID: "u1", Keyword: "a2"}))
	e.RefreshFeed("u1")
	fresh, err = e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, fresh)

	other, err := e.GetUserFeed(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestEngine_WithRepositories_HiddenNewestItems(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	feedCache, err := cache.New[[]domain.FeedItem](100, time.Minute)
	require.NoError(t, err)

	now := time.Now().UTC()
	src := &domain.Source{UserID: "u1", ProviderType: domain.ProviderRSS, ExternalID: "feed"}
	require.NoError(t, repos.Source.CreateSource(ctx, src))
	_, err = repos.Content.UpsertItems(ctx, domain.ProviderRSS, "feed", []domain.NormalizedItem{
		{OriginalID: "n1", Title: "n1", PublishedAt: now.Add(-time.Hour)},
		{OriginalID: "n2", Title: "n2", PublishedAt: now.Add(-2 * time.Hour)},
		{OriginalID: "old", Title: "old", PublishedAt: now.Add(-3 * time.Hour)},
	}, now)
	require.NoError(t, err)

	for _, id := range []string{"n1", "n2"} {
		item, err := repos.Content.GetItemByKey(ctx, domain.ContentKey{ProviderType: domain.ProviderRSS, OriginalID: id})
		require.NoError(t, err)
		require.NoError(t, repos.Interaction.UpsertInteraction(ctx, &domain.Interaction{UserID: "u1",
			ContentItemID: item.ID, Type: domain.InteractionWatched}))
	}

	e := NewEngine(Config{Candidates: repos.Content, Interactions: repos.Interaction, Keywords: repos.Keyword,
		Preferences: repos.Preferences, Cache: feedCache, CandidateLimit: 2})

	items, err := e.GetUserFeed(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1, "watched items do not use up the candidate limit")
	assert.Equal(t, "old", items[0].Title)
}

func TestEngine_WithRepositories_ItemSharedBySources(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	feedCache, err := cache.New[[]domain.FeedItem](100, time.Minute)
	require.NoError(t, err)

	site := &domain.Source{UserID: "u1", ProviderType: domain.ProviderRSS, ExternalID: "https://site/feed"}
	tech := &domain.Source{UserID: "u2", ProviderType: domain.ProviderRSS, ExternalID: "https://site/tech/feed"}
	require.NoError(t, repos.Source.CreateSource(ctx, site))
	require.NoError(t, repos.Source.CreateSource(ctx, tech))

	now := time.Now().UTC()
	post := []domain.NormalizedItem{{OriginalID: "https://site/post-1", Title: "post 1", PublishedAt: now.Add(-time.Hour)}}
	_, err = repos.Content.UpsertItems(ctx, domain.ProviderRSS, site.ExternalID, post, now)
	require.NoError(t, err)
	inserted, err := repos.Content.UpsertItems(ctx, domain.ProviderRSS, tech.ExternalID, post, now)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	e := NewEngine(Config{Candidates: repos.Content, Interactions: repos.Interaction, Keywords: repos.Keyword,
		Preferences: repos.Preferences, Cache: feedCache})

	for _, tc := range []struct {
		user   string
		source int64
	}{{user: "u1", source: site.ID}, {user: "u2", source: tech.ID}} {
		items, err := e.GetUserFeed(ctx, tc.user)
		require.NoError(t, err)
		require.Len(t, items, 1, tc.user)
		assert.Equal(t, "post 1", items[0].Title)
		assert.Equal(t, tc.source, items[0].SourceID)
	}
}
