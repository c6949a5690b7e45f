package memory

import (
	"context"

	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
)

type StandingRepository struct {
	store *Store
}

func NewStandingRepository(store *Store) *StandingRepository {
	return &StandingRepository{store: store}
}

// MatchSummary folds the tournament's match log under a read lock so the
// participants and matches come from the same snapshot.
func (r *StandingRepository) MatchSummary(_ context.Context, tournamentID int64) ([]standing.Standing, error) {
	r.store.mu.RLock()
	participants := r.store.participantsLocked(tournamentID)
	matches := r.store.matchesLocked(tournamentID)
	r.store.mu.RUnlock()

	return standing.Aggregate(participants, matches), nil
}
