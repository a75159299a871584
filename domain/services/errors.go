package services

import "errors"

// Terminal error kinds surfaced by the draw allocation engine. Store-level
// errors never cross this boundary raw: recipient conflicts are absorbed by
// the retry loop, giver conflicts resolve to an idempotent AlreadyDrawn
// result, and anything unclassified is wrapped as a generic failure.
var (
	// ErrUnknownParticipant means the identity does not name a roster member
	ErrUnknownParticipant = errors.New("unknown participant")

	// ErrNoEligibleRecipients means every other participant is already taken
	ErrNoEligibleRecipients = errors.New("no eligible recipients remain")

	// ErrRetriesExhausted means the attempt ceiling was reached without a
	// commit; the caller may re-initiate the whole action later
	ErrRetriesExhausted = errors.New("draw attempts exhausted")

	// ErrInvalidSecretCode covers both a wrong code and a giver with no
	// draw, so a failed reveal does not disclose whether a draw exists
	ErrInvalidSecretCode = errors.New("invalid secret code")
)
