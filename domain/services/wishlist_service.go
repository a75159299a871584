package services

import (
	"context"
	"fmt"

	"manito/domain/entities"
	"manito/domain/interfaces"
)

// wishlistService manages participant wishlists. A wishlist is only ever
// written by its self-declared owner.
type wishlistService struct {
	roster       *entities.Roster
	wishlistRepo interfaces.WishlistRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(roster *entities.Roster, wishlistRepo interfaces.WishlistRepository) interfaces.WishlistService {
	return &wishlistService{
		roster:       roster,
		wishlistRepo: wishlistRepo,
	}
}

// Upsert creates or replaces the wishlist owned by userID
func (s *wishlistService) Upsert(ctx context.Context, userID, text string) error {
	if !s.roster.Contains(userID) {
		return ErrUnknownParticipant
	}

	if err := s.wishlistRepo.Upsert(ctx, userID, text); err != nil {
		return fmt.Errorf("failed to save wishlist for %s: %w", userID, err)
	}
	return nil
}

// Get returns the wishlist text for userID, empty if none exists
func (s *wishlistService) Get(ctx context.Context, userID string) (string, error) {
	if !s.roster.Contains(userID) {
		return "", ErrUnknownParticipant
	}

	wishlist, err := s.wishlistRepo.GetByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to read wishlist for %s: %w", userID, err)
	}
	if wishlist == nil {
		return "", nil
	}
	return wishlist.Wishlist, nil
}
