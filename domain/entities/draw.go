package entities

import "time"

// Draw represents a committed giver-to-recipient assignment.
// The recipient is stored obfuscated under the giver's key; the hash is the
// giver-independent fingerprint that makes recipients non-reusable.
// Rows are append-only: created exactly once per giver, never mutated,
// deleted only by an administrative reset.
type Draw struct {
	ID             int64     `db:"id"`
	GiverID        string    `db:"giver_id"`
	RecipientToken string    `db:"recipient_token"`
	RecipientHash  string    `db:"recipient_hash"`
	CodeHash       string    `db:"code_hash"`
	DrawnAt        time.Time `db:"drawn_at"`
}
