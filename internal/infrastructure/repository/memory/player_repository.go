package memory

import (
	"context"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, name string) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPlayerID++
	item := player.Player{ID: r.store.nextPlayerID, Name: name}
	r.store.players[item.ID] = item

	return item, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.players), nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[playerID]; !ok {
		return player.ErrNotFound
	}

	r.store.removeMatchesLocked(func(m match.Match) bool {
		return m.WinnerID == playerID || m.LoserID == playerID
	})
	for _, members := range r.store.participants {
		delete(members, playerID)
	}
	delete(r.store.players, playerID)

	return nil
}

func (r *PlayerRepository) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches = nil
	for tournamentID := range r.store.participants {
		r.store.participants[tournamentID] = make(map[int64]struct{})
	}
	clear(r.store.players)

	return nil
}
