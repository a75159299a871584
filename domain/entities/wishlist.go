package entities

import "time"

// Wishlist is a participant's free-text gift wishlist.
// Created or replaced only by its owner.
type Wishlist struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Wishlist  string    `db:"wishlist"`
	UpdatedAt time.Time `db:"updated_at"`
}
