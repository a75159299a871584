package repository

import (
	"context"
	"testing"

	"manito/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewWishlistRepository(testDB.DB)
	ctx := context.Background()

	t.Run("returns nil when absent", func(t *testing.T) {
		wishlist, err := repo.GetByUser(ctx, "justine")
		require.NoError(t, err)
		assert.Nil(t, wishlist)
	})

	t.Run("upsert creates", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "justine", "a new bike"))

		wishlist, err := repo.GetByUser(ctx, "justine")
		require.NoError(t, err)
		require.NotNil(t, wishlist)
		assert.Equal(t, "a new bike", wishlist.Wishlist)
		assert.False(t, wishlist.UpdatedAt.IsZero())
	})

	t.Run("upsert replaces in place", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "justine", "actually, headphones"))

		wishlist, err := repo.GetByUser(ctx, "justine")
		require.NoError(t, err)
		require.NotNil(t, wishlist)
		assert.Equal(t, "actually, headphones", wishlist.Wishlist)

		// Still a single row for this user
		var count int
		err = testDB.DB.QueryRow(ctx, "SELECT COUNT(*) FROM wishlists WHERE user_id = $1", "justine").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("empty wishlist text is allowed", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "jean", ""))

		wishlist, err := repo.GetByUser(ctx, "jean")
		require.NoError(t, err)
		require.NotNil(t, wishlist)
		assert.Empty(t, wishlist.Wishlist)
	})

	t.Run("delete all clears the table", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))

		wishlist, err := repo.GetByUser(ctx, "justine")
		require.NoError(t, err)
		assert.Nil(t, wishlist)
	})
}
