package services

import (
	"context"
	"fmt"

	"manito/domain/interfaces"
	"manito/events"

	log "github.com/sirupsen/logrus"
)

// adminService handles the administrative full reset
type adminService struct {
	drawRepo     interfaces.DrawRepository
	wishlistRepo interfaces.WishlistRepository
	completion   interfaces.CompletionService
	publisher    interfaces.EventPublisher
}

// NewAdminService creates a new admin service
func NewAdminService(
	drawRepo interfaces.DrawRepository,
	wishlistRepo interfaces.WishlistRepository,
	completion interfaces.CompletionService,
	publisher interfaces.EventPublisher,
) interfaces.AdminService {
	return &adminService{
		drawRepo:     drawRepo,
		wishlistRepo: wishlistRepo,
		completion:   completion,
		publisher:    publisher,
	}
}

// ResetAll clears all draws and wishlists. The two deletes are independent
// with no cross-table atomicity: a crash in between leaves wishlists orphaned
// against an empty draws table, which is acceptable for this low-stakes
// administrative action and is not retried automatically.
func (s *adminService) ResetAll(ctx context.Context) error {
	if err := s.drawRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete draws: %w", err)
	}

	if err := s.wishlistRepo.DeleteAll(ctx); err != nil {
		log.WithError(err).Error("Draws cleared but wishlist delete failed")
		return fmt.Errorf("failed to delete wishlists: %w", err)
	}

	log.Info("All draws and wishlists cleared")
	s.publisher.Publish(ctx, events.DrawsResetEvent{})
	return nil
}

// Status reports exchange progress for the admin screen
func (s *adminService) Status(ctx context.Context) (*interfaces.CompletionStatus, error) {
	return s.completion.Status(ctx)
}
