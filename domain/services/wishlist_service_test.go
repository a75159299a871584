package services

import (
	"context"
	"testing"

	"manito/domain/entities"
	"manito/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_Upsert(t *testing.T) {
	ctx := context.Background()
	roster := testRoster(t)

	t.Run("saves for roster member", func(t *testing.T) {
		mockRepo := new(testhelpers.MockWishlistRepository)
		mockRepo.On("Upsert", ctx, "jean", "socks").Return(nil).Once()

		svc := NewWishlistService(roster, mockRepo)
		require.NoError(t, svc.Upsert(ctx, "jean", "socks"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown participant", func(t *testing.T) {
		mockRepo := new(testhelpers.MockWishlistRepository)
		svc := NewWishlistService(roster, mockRepo)

		err := svc.Upsert(ctx, "stranger", "socks")
		assert.ErrorIs(t, err, ErrUnknownParticipant)
		mockRepo.AssertNotCalled(t, "Upsert", ctx, "stranger", "socks")
	})
}

func TestWishlistService_Get(t *testing.T) {
	ctx := context.Background()
	roster := testRoster(t)

	t.Run("returns stored text", func(t *testing.T) {
		mockRepo := new(testhelpers.MockWishlistRepository)
		mockRepo.On("GetByUser", ctx, "bruce").Return(&entities.Wishlist{
			UserID:   "bruce",
			Wishlist: "a fishing rod",
		}, nil).Once()

		svc := NewWishlistService(roster, mockRepo)
		text, err := svc.Get(ctx, "bruce")
		require.NoError(t, err)
		assert.Equal(t, "a fishing rod", text)
	})

	t.Run("empty when none exists", func(t *testing.T) {
		mockRepo := new(testhelpers.MockWishlistRepository)
		mockRepo.On("GetByUser", ctx, "bruce").Return(nil, nil).Once()

		svc := NewWishlistService(roster, mockRepo)
		text, err := svc.Get(ctx, "bruce")
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
