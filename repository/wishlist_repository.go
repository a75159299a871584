package repository

import (
	"context"
	"fmt"

	"manito/database"
	"manito/domain/entities"
	"manito/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// wishlistRepository implements interfaces.WishlistRepository against Postgres
type wishlistRepository struct {
	q Queryable
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *database.DB) interfaces.WishlistRepository {
	return &wishlistRepository{q: db.Pool}
}

// Upsert creates or replaces a participant's wishlist
func (r *wishlistRepository) Upsert(ctx context.Context, userID, wishlist string) error {
	query := `
		INSERT INTO wishlists (user_id, wishlist, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET wishlist = EXCLUDED.wishlist, updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, userID, wishlist); err != nil {
		return fmt.Errorf("failed to upsert wishlist for user %s: %w", userID, err)
	}
	return nil
}

// GetByUser retrieves a participant's wishlist, or nil if none exists
func (r *wishlistRepository) GetByUser(ctx context.Context, userID string) (*entities.Wishlist, error) {
	query := `
		SELECT id, user_id, wishlist, updated_at
		FROM wishlists
		WHERE user_id = $1
	`

	var wishlist entities.Wishlist
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&wishlist.ID,
		&wishlist.UserID,
		&wishlist.Wishlist,
		&wishlist.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}

	return &wishlist, nil
}

// DeleteAll removes every wishlist record
func (r *wishlistRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM wishlists`); err != nil {
		return fmt.Errorf("failed to delete wishlists: %w", err)
	}
	return nil
}
