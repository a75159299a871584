package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"manito/domain/entities"
	"manito/domain/interfaces"
	"manito/domain/utils"
	"manito/events"

	log "github.com/sirupsen/logrus"
)

const (
	// Randomized backoff bounds for retrying a contested recipient
	backoffMinMillis  = 100
	backoffSpanMillis = 301 // exclusive upper bound of the jitter span
)

// drawService implements the draw allocation engine.
//
// The engine is optimistic: it reads the committed fingerprint set, picks an
// eligible recipient at random, and attempts an atomic insert. The store's
// uniqueness constraints are the only synchronization point; a contested
// recipient shows up as an insert conflict and is retried with a fresh read.
type drawService struct {
	roster       *entities.Roster
	drawRepo     interfaces.DrawRepository
	wishlistRepo interfaces.WishlistRepository
	publisher    interfaces.EventPublisher
	maxAttempts  int

	// Injectable randomness and sleep so tests run deterministic and fast
	intn  func(n int) int
	sleep func(d time.Duration)
}

// NewDrawService creates a new draw allocation service
func NewDrawService(
	roster *entities.Roster,
	drawRepo interfaces.DrawRepository,
	wishlistRepo interfaces.WishlistRepository,
	publisher interfaces.EventPublisher,
	maxAttempts int,
) interfaces.DrawService {
	return &drawService{
		roster:       roster,
		drawRepo:     drawRepo,
		wishlistRepo: wishlistRepo,
		publisher:    publisher,
		maxAttempts:  maxAttempts,
		intn:         rand.Intn,
		sleep:        time.Sleep,
	}
}

// eligibleRecipients computes the candidate set for a giver: every roster
// member except the giver themself and anyone whose fingerprint is already
// committed. Pure, so selection logic is testable without a store.
func eligibleRecipients(roster *entities.Roster, giverID string, taken map[string]bool) []entities.Participant {
	var eligible []entities.Participant
	for _, p := range roster.All() {
		if p.ID == giverID {
			continue
		}
		if taken[utils.Fingerprint(p.ID)] {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}

// Commit assigns a recipient to the giver. On success exactly one draw record
// is durably persisted; when the giver already drew, the pre-existing record
// is decoded and returned with no new write.
func (s *drawService) Commit(ctx context.Context, giverID string) (*interfaces.DrawResult, error) {
	if !s.roster.Contains(giverID) {
		return nil, ErrUnknownParticipant
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		// Fresh read every attempt: a stale taken-set is exactly what
		// causes allocation conflicts
		fingerprints, err := s.drawRepo.ListFingerprints(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read committed fingerprints: %w", err)
		}
		taken := make(map[string]bool, len(fingerprints))
		for _, fp := range fingerprints {
			taken[fp] = true
		}

		eligible := eligibleRecipients(s.roster, giverID, taken)
		if len(eligible) == 0 {
			// Terminal: candidates cannot appear mid-call
			return nil, ErrNoEligibleRecipients
		}

		candidate := eligible[s.intn(len(eligible))]

		code, err := utils.IssueCode()
		if err != nil {
			return nil, fmt.Errorf("failed to issue secret code: %w", err)
		}
		codeHash, err := utils.HashCode(code)
		if err != nil {
			return nil, fmt.Errorf("failed to hash secret code: %w", err)
		}

		draw := &entities.Draw{
			GiverID:        giverID,
			RecipientToken: utils.Obfuscate(candidate.ID, giverID),
			RecipientHash:  utils.Fingerprint(candidate.ID),
			CodeHash:       codeHash,
		}

		err = s.drawRepo.Insert(ctx, draw)
		switch {
		case err == nil:
			log.WithFields(log.Fields{
				"giverID": giverID,
				"attempt": attempt,
			}).Info("Draw committed")
			s.publisher.Publish(ctx, events.DrawCommittedEvent{GiverID: giverID})
			return &interfaces.DrawResult{
				Recipient:  candidate,
				SecretCode: code,
				DrawnAt:    draw.DrawnAt,
			}, nil

		case errors.Is(err, interfaces.ErrRecipientTaken):
			// A concurrent committer won this recipient; back off briefly
			// and retry against fresh state
			delay := time.Duration(backoffMinMillis+s.intn(backoffSpanMillis)) * time.Millisecond
			log.WithFields(log.Fields{
				"giverID": giverID,
				"attempt": attempt,
				"backoff": delay,
			}).Warn("Recipient contested, retrying")
			s.sleep(delay)

		case errors.Is(err, interfaces.ErrGiverTaken):
			// The giver raced itself or already drew earlier; fall back to
			// the existing record
			return s.existingResult(ctx, giverID)

		default:
			return nil, fmt.Errorf("failed to commit draw for %s: %w", giverID, err)
		}
	}

	log.WithField("giverID", giverID).Error("Draw attempts exhausted")
	return nil, ErrRetriesExhausted
}

// existingResult decodes the giver's committed draw into an idempotent result
func (s *drawService) existingResult(ctx context.Context, giverID string) (*interfaces.DrawResult, error) {
	draw, err := s.drawRepo.GetByGiver(ctx, giverID)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing draw for %s: %w", giverID, err)
	}
	if draw == nil {
		// The insert reported a giver conflict but the row is gone; an
		// administrative reset raced this call
		return nil, fmt.Errorf("draw for %s disappeared during commit", giverID)
	}

	recipient, err := s.decodeRecipient(draw)
	if err != nil {
		return nil, err
	}

	return &interfaces.DrawResult{
		Recipient:    recipient,
		AlreadyDrawn: true,
		DrawnAt:      draw.DrawnAt,
	}, nil
}

// Reveal returns the giver's assigned recipient after verifying the secret
// code. A wrong code and an absent draw are deliberately indistinguishable.
func (s *drawService) Reveal(ctx context.Context, giverID, code string) (*interfaces.RevealResult, error) {
	draw, err := s.drawRepo.GetByGiver(ctx, giverID)
	if err != nil {
		return nil, fmt.Errorf("failed to read draw for %s: %w", giverID, err)
	}
	if draw == nil || !utils.VerifyCode(code, draw.CodeHash) {
		return nil, ErrInvalidSecretCode
	}

	recipient, err := s.decodeRecipient(draw)
	if err != nil {
		return nil, err
	}

	result := &interfaces.RevealResult{Recipient: recipient}

	wishlist, err := s.wishlistRepo.GetByUser(ctx, recipient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read wishlist for %s: %w", recipient.ID, err)
	}
	if wishlist != nil {
		result.RecipientWishlist = wishlist.Wishlist
	}

	return result, nil
}

// DrawnGivers returns the ids of every giver that has committed a draw
func (s *drawService) DrawnGivers(ctx context.Context) ([]string, error) {
	ids, err := s.drawRepo.ListGiverIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drawn givers: %w", err)
	}
	return ids, nil
}

// decodeRecipient resolves a stored draw back to its roster participant
func (s *drawService) decodeRecipient(draw *entities.Draw) (entities.Participant, error) {
	recipientID, err := utils.Reveal(draw.RecipientToken, draw.GiverID)
	if err != nil {
		return entities.Participant{}, fmt.Errorf("failed to decode recipient for %s: %w", draw.GiverID, err)
	}
	recipient, ok := s.roster.Get(recipientID)
	if !ok {
		return entities.Participant{}, fmt.Errorf("decoded recipient %q is not on the roster", recipientID)
	}
	return recipient, nil
}
