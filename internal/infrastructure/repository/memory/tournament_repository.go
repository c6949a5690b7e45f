package memory

import (
	"context"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
)

type TournamentRepository struct {
	store *Store
}

func NewTournamentRepository(store *Store) *TournamentRepository {
	return &TournamentRepository{store: store}
}

func (r *TournamentRepository) Create(_ context.Context, name string) (tournament.Tournament, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTournamentID++
	item := tournament.Tournament{ID: r.store.nextTournamentID, Name: name}
	r.store.tournaments[item.ID] = item
	r.store.participants[item.ID] = make(map[int64]struct{})

	return item, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.tournaments[tournamentID]
	return item, ok, nil
}

func (r *TournamentRepository) Delete(_ context.Context, tournamentID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tournaments[tournamentID]; !ok {
		return tournament.ErrNotFound
	}

	r.store.removeMatchesLocked(func(m match.Match) bool {
		return m.TournamentID == tournamentID
	})
	delete(r.store.participants, tournamentID)
	delete(r.store.tournaments, tournamentID)

	return nil
}

func (r *TournamentRepository) DeleteAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.matches = nil
	clear(r.store.participants)
	clear(r.store.tournaments)

	return nil
}

func (r *TournamentRepository) AddParticipant(_ context.Context, tournamentID, playerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tournaments[tournamentID]; !ok {
		return tournament.ErrNotFound
	}
	if _, ok := r.store.players[playerID]; !ok {
		return errUnknownPlayer(playerID)
	}

	members := r.store.participants[tournamentID]
	if _, ok := members[playerID]; ok {
		return tournament.ErrAlreadyRegistered
	}
	members[playerID] = struct{}{}

	return nil
}

func (r *TournamentRepository) IsParticipant(_ context.Context, tournamentID, playerID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.participants[tournamentID][playerID]
	return ok, nil
}

func (r *TournamentRepository) CountParticipants(_ context.Context, tournamentID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.participants[tournamentID]), nil
}
