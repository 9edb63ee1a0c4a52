package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedmix/pkg/domain"
)

func TestKeywordRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	kw1 := &domain.FilterKeyword{UserID: "user1", Keyword: "spoiler"}
	kw2 := &domain.FilterKeyword{UserID: "user1", Keyword: "crypto", IsWildcard: true}
	require.NoError(t, repos.Keyword.CreateKeyword(ctx, kw1))
	require.NoError(t, repos.Keyword.CreateKeyword(ctx, kw2))
	require.NoError(t, repos.Keyword.CreateKeyword(ctx, &domain.FilterKeyword{UserID: "user2", Keyword: "spoiler"}))

	list, err := repos.Keyword.ListKeywords(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "crypto", list[0].Keyword)
	assert.True(t, list[0].IsWildcard)
	assert.Equal(t, "spoiler", list[1].Keyword)
	assert.False(t, list[1].IsWildcard)

	t.Run("duplicate", func(t *testing.T) {
		err := repos.Keyword.CreateKeyword(ctx, &domain.FilterKeyword{UserID: "user1", Keyword: "spoiler"})
		require.Error(t, err)
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "keyword", verr.Field)
	})

	t.Run("delete", func(t *testing.T) {
		err := repos.Keyword.DeleteKeyword(ctx, "user2", kw1.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "can't delete other user's keyword")

		require.NoError(t, repos.Keyword.DeleteKeyword(ctx, "user1", kw1.ID))
		list, err := repos.Keyword.ListKeywords(ctx, "user1")
		require.NoError(t, err)
		assert.Len(t, list, 1)

		err = repos.Keyword.DeleteKeyword(ctx, "user1", kw1.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
