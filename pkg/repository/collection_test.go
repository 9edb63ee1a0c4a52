package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
)

func TestCollectionRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := createTestSource(t, repos, "user1", domain.ProviderPodcast, "pod")
	content := seedContent(t, repos, src, "ep", 2)

	c := &domain.Collection{UserID: "user1", Name: "later"}
	require.NoError(t, repos.Collection.CreateCollection(ctx, c))
	assert.NotZero(t, c.ID)
	require.NoError(t, repos.Collection.CreateCollection(ctx, &domain.Collection{UserID: "user1", Name: "favorites"}))

	t.Run("duplicate name", func(t *testing.T) {
		err := repos.Collection.CreateCollection(ctx, &domain.Collection{UserID: "user1", Name: "later"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("list and get", func(t *testing.T) {
		list, err := repos.Collection.ListCollections(ctx, "user1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "favorites", list[0].Name)

		got, err := repos.Collection.GetCollection(ctx, "user1", c.ID)
		require.NoError(t, err)
		assert.Equal(t, "later", got.Name)

		_, err = repos.Collection.GetCollection(ctx, "user2", c.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("items", func(t *testing.T) {
		require.NoError(t, repos.Collection.AddItem(ctx, c.ID, content[0].ID))
		require.NoError(t, repos.Collection.AddItem(ctx, c.ID, content[1].ID))
		require.NoError(t, repos.Collection.AddItem(ctx, c.ID, content[1].ID))

		items, err := repos.Collection.ListItems(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}
