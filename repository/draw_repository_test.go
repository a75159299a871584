package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"manito/domain/entities"
	"manito/domain/interfaces"
	"manito/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraw(giverID, recipientToken, recipientHash string) *entities.Draw {
	return &entities.Draw{
		GiverID:        giverID,
		RecipientToken: recipientToken,
		RecipientHash:  recipientHash,
		CodeHash:       "$2a$10$testhashvaluetesthashvaluetesthashva",
	}
}

func TestDrawRepository_Insert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates draw and populates id and timestamp", func(t *testing.T) {
		draw := newDraw("justine", "dG9rZW4=", "fp-jean")
		require.NoError(t, repo.Insert(ctx, draw))

		assert.NotZero(t, draw.ID)
		assert.False(t, draw.DrawnAt.IsZero())
	})

	t.Run("duplicate giver is classified as giver conflict", func(t *testing.T) {
		err := repo.Insert(ctx, newDraw("justine", "dG9rZW4=", "fp-other"))
		assert.ErrorIs(t, err, interfaces.ErrGiverTaken)
	})

	t.Run("duplicate recipient hash is classified as recipient conflict", func(t *testing.T) {
		err := repo.Insert(ctx, newDraw("jean", "dG9rZW4=", "fp-jean"))
		assert.ErrorIs(t, err, interfaces.ErrRecipientTaken)
	})

	t.Run("conflicting insert writes nothing", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestDrawRepository_GetByGiver(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	t.Run("returns nil for unknown giver", func(t *testing.T) {
		draw, err := repo.GetByGiver(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, draw)
	})

	t.Run("round-trips a stored draw", func(t *testing.T) {
		stored := newDraw("bruce", "c2VjcmV0", "fp-vivian")
		require.NoError(t, repo.Insert(ctx, stored))

		draw, err := repo.GetByGiver(ctx, "bruce")
		require.NoError(t, err)
		require.NotNil(t, draw)
		assert.Equal(t, stored.ID, draw.ID)
		assert.Equal(t, "c2VjcmV0", draw.RecipientToken)
		assert.Equal(t, "fp-vivian", draw.RecipientHash)
	})
}

func TestDrawRepository_Listings(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newDraw("justine", "dA==", "fp-a")))
	require.NoError(t, repo.Insert(ctx, newDraw("jean", "dB==", "fp-b")))

	fingerprints, err := repo.ListFingerprints(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"fp-a", "fp-b"}, fingerprints)

	givers, err := repo.ListGiverIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"justine", "jean"}, givers)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDrawRepository_ConcurrentInsertSameRecipient(t *testing.T) {
	// Two clients race one recipient; the unique constraint must let
	// exactly one insert through
	testDB := testutil.SetupTestDatabase(t)
	repo := NewDrawRepository(testDB.DB)
	ctx := context.Background()

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			giver := string(rune('a' + i))
			errs[i] = repo.Insert(ctx, newDraw(giver, "dG9rZW4=", "fp-contested"))
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, interfaces.ErrRecipientTaken):
			conflicts++
		default:
			t.Errorf("unexpected insert error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, conflicts)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
