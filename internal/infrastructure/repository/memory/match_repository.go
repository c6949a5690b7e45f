package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

// Create enforces the same integrity rules as the database constraints:
// distinct players, both registered in the tournament.
func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if item.WinnerID == item.LoserID {
		return match.Match{}, fmt.Errorf("insert match tournament=%d: winner equals loser: %w", item.TournamentID, match.ErrInvalidParticipants)
	}
	members := r.store.participants[item.TournamentID]
	for _, playerID := range []int64{item.WinnerID, item.LoserID} {
		if _, ok := members[playerID]; !ok {
			return match.Match{}, fmt.Errorf("insert match tournament=%d: player=%d not registered: %w", item.TournamentID, playerID, match.ErrInvalidParticipants)
		}
	}

	r.store.nextMatchID++
	item.ID = r.store.nextMatchID
	r.store.matches = append(r.store.matches, item)

	return item, nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID int64) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.matchesLocked(tournamentID), nil
}

func (r *MatchRepository) DeleteByTournament(_ context.Context, tournamentID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.removeMatchesLocked(func(m match.Match) bool {
		return m.TournamentID == tournamentID
	})
	return nil
}

func (r *MatchRepository) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches = nil
	return nil
}

func errUnknownPlayer(playerID int64) error {
	return fmt.Errorf("player=%d does not exist", playerID)
}
