package services

import (
	"context"
	"testing"

	"manito/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionService_Status(t *testing.T) {
	ctx := context.Background()
	roster := testRoster(t) // 4 participants

	cases := []struct {
		name     string
		draws    int
		complete bool
	}{
		{"no draws yet", 0, false},
		{"one short of everyone", 3, false},
		{"everyone has drawn", 4, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockDrawRepo := new(testhelpers.MockDrawRepository)
			mockDrawRepo.On("Count", ctx).Return(tc.draws, nil).Once()

			svc := NewCompletionService(roster, mockDrawRepo)
			status, err := svc.Status(ctx)
			require.NoError(t, err)

			assert.Equal(t, 4, status.TotalParticipants)
			assert.Equal(t, tc.draws, status.TotalDraws)
			assert.Equal(t, tc.complete, status.IsComplete)
		})
	}
}
