package interfaces

import (
	"context"
	"errors"

	"manito/domain/entities"
)

// Conflict kinds surfaced by DrawRepository.Insert. These are the only two
// store errors the allocation engine distinguishes; anything else is
// unclassified and terminal for the call.
var (
	// ErrGiverTaken means a draw already exists for this giver
	ErrGiverTaken = errors.New("draw already exists for giver")

	// ErrRecipientTaken means a concurrent committer already took this recipient
	ErrRecipientTaken = errors.New("recipient already taken")
)

// DrawRepository defines the interface for draw record data access
type DrawRepository interface {
	// Insert atomically creates a draw record, honoring both uniqueness
	// constraints. Returns ErrGiverTaken or ErrRecipientTaken on the
	// corresponding constraint violation.
	Insert(ctx context.Context, draw *entities.Draw) error

	// GetByGiver retrieves the draw for a giver, or nil if none exists
	GetByGiver(ctx context.Context, giverID string) (*entities.Draw, error)

	// ListFingerprints returns the recipient hash of every committed draw
	ListFingerprints(ctx context.Context) ([]string, error)

	// ListGiverIDs returns the giver id of every committed draw
	ListGiverIDs(ctx context.Context) ([]string, error)

	// Count returns the number of committed draws
	Count(ctx context.Context) (int, error)

	// DeleteAll removes every draw record
	DeleteAll(ctx context.Context) error
}

// WishlistRepository defines the interface for wishlist data access
type WishlistRepository interface {
	// Upsert creates or replaces a participant's wishlist
	Upsert(ctx context.Context, userID, wishlist string) error

	// GetByUser retrieves a participant's wishlist, or nil if none exists
	GetByUser(ctx context.Context, userID string) (*entities.Wishlist, error)

	// DeleteAll removes every wishlist record
	DeleteAll(ctx context.Context) error
}
