package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
)

// setupTestDB creates repositories backed by an in-memory database
func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	return repos, func() {
		assert.NoError(t, repos.Close())
	}
}

// createTestSource creates a source for the user with the given external id
func createTestSource(t *testing.T, repos *Repositories, userID string, provider domain.ProviderType, externalID string) *domain.Source {
	t.Helper()
	src := &domain.Source{
		UserID:       userID,
		ProviderType: provider,
		ExternalID:   externalID,
		DisplayName:  "Source " + externalID,
	}
	require.NoError(t, repos.Source.CreateSource(context.Background(), src))
	return src
}

// normalizedItems builds n items with ids prefix-1..prefix-n, published an hour apart
func normalizedItems(prefix string, n int, base time.Time) []domain.NormalizedItem {
	res := make([]domain.NormalizedItem, n)
	for i := range res {
		res[i] = domain.NormalizedItem{
			OriginalID:  fmt.Sprintf("%s-%d", prefix, i+1),
			Title:       fmt.Sprintf("%s title %d", prefix, i+1),
			Description: "description",
			URL:         fmt.Sprintf("https://example.com/%s/%d", prefix, i+1),
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return res
}

func TestRepositories_Integration(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	src := createTestSource(t, repos, "user1", domain.ProviderRSS, "https://example.com/feed.xml")
	assert.NotZero(t, src.ID)

	inserted, err := repos.Content.UpsertItems(ctx, domain.ProviderRSS, src.ExternalID,
		normalizedItems("rss", 3, time.Now().Add(-time.Hour)), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	candidates, err := repos.Content.ListCandidates(ctx, domain.CandidateQuery{UserID: "user1", Limit: 100})
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, src.ID, candidates[0].SourceID)
	assert.Equal(t, "Source https://example.com/feed.xml", candidates[0].SourceName)
	assert.Equal(t, "rss-3", candidates[0].OriginalID, "newest first")

	// another user does not see content of sources they don't subscribe to
	candidates, err = repos.Content.ListCandidates(ctx, domain.CandidateQuery{UserID: "user2", Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, candidates)

	t.Run("schema init is idempotent", func(t *testing.T) {
		require.NoError(t, initSchema(ctx, repos.DB))
	})
}

func TestChunkStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		size int
		want [][]string
	}{
		{name: "empty", in: nil, size: 2, want: nil},
		{name: "exact", in: []string{"a", "b"}, size: 2, want: [][]string{{"a", "b"}}},
		{name: "remainder", in: []string{"a", "b", "c"}, size: 2, want: [][]string{{"a", "b"}, {"c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkStrings(tt.in, tt.size))
		})
	}
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(fmt.Errorf("exec: database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(fmt.Errorf("database table is locked")))
	assert.False(t, isLockError(fmt.Errorf("no such table: foo")))
}

func TestWithLockRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return fmt.Errorf("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), func() error {
			calls++
			return fmt.Errorf("constraint failed")
		})
		require.EqualError(t, err, "constraint failed")
		assert.Equal(t, 1, calls)
	})
}
