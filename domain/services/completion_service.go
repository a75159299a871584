package services

import (
	"context"
	"fmt"

	"manito/domain/entities"
	"manito/domain/interfaces"
)

// completionService derives "has everyone drawn" from roster size vs the
// committed draw count. Pure read, recomputed on demand.
type completionService struct {
	roster   *entities.Roster
	drawRepo interfaces.DrawRepository
}

// NewCompletionService creates a new completion service
func NewCompletionService(roster *entities.Roster, drawRepo interfaces.DrawRepository) interfaces.CompletionService {
	return &completionService{
		roster:   roster,
		drawRepo: drawRepo,
	}
}

// Status reports participant and draw totals
func (s *completionService) Status(ctx context.Context) (*interfaces.CompletionStatus, error) {
	count, err := s.drawRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count draws: %w", err)
	}

	return &interfaces.CompletionStatus{
		TotalParticipants: s.roster.Size(),
		TotalDraws:        count,
		IsComplete:        count == s.roster.Size(),
	}, nil
}
