package repository

import (
	"context"
	"errors"
	"fmt"

	"manito/database"
	"manito/domain/entities"
	"manito/domain/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names from the draws schema, used to classify insert conflicts
const (
	giverConstraint     = "draws_giver_id_unique"
	recipientConstraint = "draws_recipient_hash_unique"

	// pgerrUniqueViolation is the Postgres error code for unique_violation
	pgerrUniqueViolation = "23505"
)

// drawRepository implements interfaces.DrawRepository against Postgres
type drawRepository struct {
	q Queryable
}

// NewDrawRepository creates a new draw repository
func NewDrawRepository(db *database.DB) interfaces.DrawRepository {
	return &drawRepository{q: db.Pool}
}

// Insert atomically creates a draw record. The single INSERT honors both
// uniqueness constraints at the store, so there is no check-then-insert
// window; violations are classified by constraint name.
func (r *drawRepository) Insert(ctx context.Context, draw *entities.Draw) error {
	query := `
		INSERT INTO draws (giver_id, recipient_token, recipient_hash, code_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, drawn_at
	`

	err := r.q.QueryRow(ctx, query,
		draw.GiverID,
		draw.RecipientToken,
		draw.RecipientHash,
		draw.CodeHash,
	).Scan(&draw.ID, &draw.DrawnAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrUniqueViolation {
			switch pgErr.ConstraintName {
			case giverConstraint:
				return interfaces.ErrGiverTaken
			case recipientConstraint:
				return interfaces.ErrRecipientTaken
			}
		}
		return fmt.Errorf("failed to insert draw for giver %s: %w", draw.GiverID, err)
	}

	return nil
}

// GetByGiver retrieves the draw for a giver, or nil if none exists
func (r *drawRepository) GetByGiver(ctx context.Context, giverID string) (*entities.Draw, error) {
	query := `
		SELECT id, giver_id, recipient_token, recipient_hash, code_hash, drawn_at
		FROM draws
		WHERE giver_id = $1
	`

	var draw entities.Draw
	err := r.q.QueryRow(ctx, query, giverID).Scan(
		&draw.ID,
		&draw.GiverID,
		&draw.RecipientToken,
		&draw.RecipientHash,
		&draw.CodeHash,
		&draw.DrawnAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw for giver %s: %w", giverID, err)
	}

	return &draw, nil
}

// ListFingerprints returns the recipient hash of every committed draw
func (r *drawRepository) ListFingerprints(ctx context.Context) ([]string, error) {
	return r.listColumn(ctx, `SELECT recipient_hash FROM draws`)
}

// ListGiverIDs returns the giver id of every committed draw
func (r *drawRepository) ListGiverIDs(ctx context.Context) ([]string, error) {
	return r.listColumn(ctx, `SELECT giver_id FROM draws`)
}

func (r *drawRepository) listColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan draw row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read draw rows: %w", err)
	}

	return values, nil
}

// Count returns the number of committed draws
func (r *drawRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM draws`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}
	return count, nil
}

// DeleteAll removes every draw record
func (r *drawRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM draws`); err != nil {
		return fmt.Errorf("failed to delete draws: %w", err)
	}
	return nil
}
