package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
	basecache "github.com/riskibarqy/swiss-tournament/internal/platform/cache"
)

const (
	standingPrefix    = "standing:"
	tournamentPrefix  = "tournament:id:"
	participantPrefix = "participant:"
)

func standingKey(tournamentID int64) string {
	return standingPrefix + strconv.FormatInt(tournamentID, 10)
}

func tournamentKey(tournamentID int64) string {
	return tournamentPrefix + strconv.FormatInt(tournamentID, 10)
}

func participantKey(tournamentID, playerID int64) string {
	return participantPrefix + strconv.FormatInt(tournamentID, 10) + ":" + strconv.FormatInt(playerID, 10)
}

// StandingRepository caches the per-tournament match summary. Writes through
// the sibling decorators evict it.
type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) MatchSummary(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	items, err := basecache.Load(ctx, r.cache, standingKey(tournamentID), func(ctx context.Context) ([]standing.Standing, error) {
		items, err := r.next.MatchSummary(ctx, tournamentID)
		if err != nil {
			return nil, err
		}
		return append([]standing.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]standing.Standing(nil), items...), nil
}

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

type cachedTournamentByID struct {
	value  tournament.Tournament
	exists bool
}

func (r *TournamentRepository) Create(ctx context.Context, name string) (tournament.Tournament, error) {
	item, err := r.next.Create(ctx, name)
	if err != nil {
		return tournament.Tournament{}, err
	}
	r.cache.Delete(ctx, tournamentKey(item.ID))
	return item, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, tournamentKey(tournamentID), func(ctx context.Context) (cachedTournamentByID, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		if err != nil {
			return cachedTournamentByID{}, err
		}
		return cachedTournamentByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}

	return cached.value, cached.exists, nil
}

func (r *TournamentRepository) Delete(ctx context.Context, tournamentID int64) error {
	err := r.next.Delete(ctx, tournamentID)
	r.cache.Delete(ctx, tournamentKey(tournamentID))
	r.cache.Delete(ctx, standingKey(tournamentID))
	r.cache.DeletePrefix(ctx, participantPrefix+strconv.FormatInt(tournamentID, 10)+":")
	return err
}

func (r *TournamentRepository) DeleteAll(ctx context.Context) error {
	err := r.next.DeleteAll(ctx)
	r.cache.DeletePrefix(ctx, tournamentPrefix)
	r.cache.DeletePrefix(ctx, standingPrefix)
	r.cache.DeletePrefix(ctx, participantPrefix)
	return err
}

func (r *TournamentRepository) AddParticipant(ctx context.Context, tournamentID, playerID int64) error {
	err := r.next.AddParticipant(ctx, tournamentID, playerID)
	if err == nil {
		r.cache.Delete(ctx, participantKey(tournamentID, playerID))
		r.cache.Delete(ctx, standingKey(tournamentID))
	}
	return err
}

func (r *TournamentRepository) IsParticipant(ctx context.Context, tournamentID, playerID int64) (bool, error) {
	return basecache.Load(ctx, r.cache, participantKey(tournamentID, playerID), func(ctx context.Context) (bool, error) {
		return r.next.IsParticipant(ctx, tournamentID, playerID)
	})
}

func (r *TournamentRepository) CountParticipants(ctx context.Context, tournamentID int64) (int, error) {
	return r.next.CountParticipants(ctx, tournamentID)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return match.Match{}, err
	}
	r.cache.Delete(ctx, standingKey(item.TournamentID))
	return created, nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	return r.next.ListByTournament(ctx, tournamentID)
}

func (r *MatchRepository) DeleteByTournament(ctx context.Context, tournamentID int64) error {
	err := r.next.DeleteByTournament(ctx, tournamentID)
	r.cache.Delete(ctx, standingKey(tournamentID))
	return err
}

func (r *MatchRepository) DeleteAll(ctx context.Context) error {
	err := r.next.DeleteAll(ctx)
	r.cache.DeletePrefix(ctx, standingPrefix)
	return err
}

// PlayerRepository passes reads through. Deleting players changes standings
// and participation in every tournament, so both caches are dropped.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Create(ctx context.Context, name string) (player.Player, error) {
	return r.next.Create(ctx, name)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	return r.next.GetByID(ctx, playerID)
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	return r.next.Count(ctx)
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	err := r.next.Delete(ctx, playerID)
	r.cache.DeletePrefix(ctx, standingPrefix)
	r.cache.DeletePrefix(ctx, participantPrefix)
	return err
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	err := r.next.DeleteAll(ctx)
	r.cache.DeletePrefix(ctx, standingPrefix)
	r.cache.DeletePrefix(ctx, participantPrefix)
	return err
}
