package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
)

func TestSourceRepository_CreateSource(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "user1", domain.ProviderVideoA, "UC123")

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "user1", got.UserID)
	assert.Equal(t, domain.ProviderVideoA, got.ProviderType)
	assert.Equal(t, "UC123", got.ExternalID)
	assert.Nil(t, got.LastFetchAt)
	assert.Empty(t, got.LastFetchStatus)

	t.Run("duplicate for same user is a validation error", func(t *testing.T) {
		err := repos.Source.CreateSource(ctx, &domain.Source{UserID: "user1", ProviderType: domain.ProviderVideoA, ExternalID: "UC123"})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("same external source for another user is fine", func(t *testing.T) {
		err := repos.Source.CreateSource(ctx, &domain.Source{UserID: "user2", ProviderType: domain.ProviderVideoA, ExternalID: "UC123"})
		require.NoError(t, err)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := repos.Source.GetSource(ctx, 9999)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestSourceRepository_ListSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := createTestSource(t, repos, "user1", domain.ProviderRSS, "a")
	b := createTestSource(t, repos, "user1", domain.ProviderRSS, "b")
	createTestSource(t, repos, "user2", domain.ProviderRSS, "c")

	muted := true
	require.NoError(t, repos.Source.UpdateSource(ctx, "user1", b.ID, domain.SourceUpdate{Muted: &muted}))

	all, err := repos.Source.ListSources(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repos.Source.ListSources(ctx, "", true)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	user1Active, err := repos.Source.ListSources(ctx, "user1", true)
	require.NoError(t, err)
	require.Len(t, user1Active, 1)
	assert.Equal(t, a.ID, user1Active[0].ID)
}

func TestSourceRepository_UpdateAndDelete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "user1", domain.ProviderPodcast, "https://example.com/pod.xml")

	name, safe := "My Podcast", true
	require.NoError(t, repos.Source.UpdateSource(ctx, "user1", src.ID, domain.SourceUpdate{DisplayName: &name, AlwaysSafe: &safe}))

	got, err := repos.Source.GetUserSource(ctx, "user1", src.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Podcast", got.DisplayName)
	assert.True(t, got.AlwaysSafe)
	assert.False(t, got.Muted)

	t.Run("other user can't update or delete", func(t *testing.T) {
		err := repos.Source.UpdateSource(ctx, "user2", src.ID, domain.SourceUpdate{DisplayName: &name})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		err = repos.Source.DeleteSource(ctx, "user2", src.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = repos.Source.GetUserSource(ctx, "user2", src.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("empty update checks existence", func(t *testing.T) {
		require.NoError(t, repos.Source.UpdateSource(ctx, "user1", src.ID, domain.SourceUpdate{}))
		err := repos.Source.UpdateSource(ctx, "user1", 777, domain.SourceUpdate{})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("delete keeps shared content", func(t *testing.T) {
		_, err := repos.Content.UpsertItems(ctx, domain.ProviderPodcast, src.ExternalID,
			normalizedItems("ep", 2, time.Now()), time.Now())
		require.NoError(t, err)

		require.NoError(t, repos.Source.DeleteSource(ctx, "user1", src.ID))
		_, err = repos.Source.GetSource(ctx, src.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		count, err := repos.Content.CountBySource(ctx, domain.ProviderPodcast, src.ExternalID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestSourceRepository_FetchStatus(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "user1", domain.ProviderRSS, "feed")
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repos.Source.UpdateFetchError(ctx, src.ID, now, "boom"))
	require.NoError(t, repos.Source.UpdateFetchError(ctx, src.ID, now, "boom again"))

	got, err := repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FetchStatusError, got.LastFetchStatus)
	assert.Equal(t, "boom again", got.LastError)
	assert.Equal(t, 2, got.ErrorCount)
	require.NotNil(t, got.LastFetchAt)
	assert.True(t, got.LastFetchAt.Equal(now))

	later := now.Add(time.Minute)
	require.NoError(t, repos.Source.UpdateFetchSuccess(ctx, src.ID, later))
	got, err = repos.Source.GetSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FetchStatusSuccess, got.LastFetchStatus)
	assert.Empty(t, got.LastError)
	assert.Zero(t, got.ErrorCount)
	assert.True(t, got.LastFetchAt.Equal(later))
}
