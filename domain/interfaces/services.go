package interfaces

import (
	"context"
	"time"

	"manito/domain/entities"
	"manito/events"
)

// DrawResult is the outcome of a commit call
type DrawResult struct {
	Recipient entities.Participant

	// SecretCode is the plaintext code issued with a fresh draw. It is shown
	// once; only its salted hash is stored, so it is empty when AlreadyDrawn.
	SecretCode string

	// AlreadyDrawn marks an idempotent result: the giver had drawn before
	// and no new record was written.
	AlreadyDrawn bool

	DrawnAt time.Time
}

// RevealResult is the outcome of a code-gated reveal
type RevealResult struct {
	Recipient entities.Participant

	// RecipientWishlist is the recipient's stored wishlist, empty if none
	RecipientWishlist string
}

// CompletionStatus reports how far the exchange has progressed
type CompletionStatus struct {
	TotalParticipants int  `json:"total_participants"`
	TotalDraws        int  `json:"total_draws"`
	IsComplete        bool `json:"is_complete"`
}

// DrawService defines the draw allocation engine
type DrawService interface {
	// Commit assigns a recipient to the giver, or returns the pre-existing
	// assignment when the giver already drew
	Commit(ctx context.Context, giverID string) (*DrawResult, error)

	// Reveal returns the giver's assigned recipient after verifying the
	// secret code issued at draw time
	Reveal(ctx context.Context, giverID, code string) (*RevealResult, error)

	// DrawnGivers returns the ids of every giver that has committed a draw
	DrawnGivers(ctx context.Context) ([]string, error)
}

// CompletionService derives exchange progress from the draw count
type CompletionService interface {
	// Status reports participant and draw totals
	Status(ctx context.Context) (*CompletionStatus, error)
}

// WishlistService manages participant wishlists
type WishlistService interface {
	// Upsert creates or replaces the wishlist owned by userID
	Upsert(ctx context.Context, userID, text string) error

	// Get returns the wishlist text for userID, empty if none exists
	Get(ctx context.Context, userID string) (string, error)
}

// AdminService handles administrative operations
type AdminService interface {
	// ResetAll clears all draws and wishlists
	ResetAll(ctx context.Context) error

	// Status reports exchange progress for the admin screen
	Status(ctx context.Context) (*CompletionStatus, error)
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}
