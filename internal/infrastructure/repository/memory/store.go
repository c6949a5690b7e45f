package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
)

// Store is the shared state behind the memory repositories. One lock guards
// every table so cascading deletes are atomic across repositories.
type Store struct {
	mu sync.RWMutex

	players      map[int64]player.Player
	tournaments  map[int64]tournament.Tournament
	participants map[int64]map[int64]struct{}
	matches      []match.Match

	nextPlayerID     int64
	nextTournamentID int64
	nextMatchID      int64
}

func NewStore() *Store {
	return &Store{
		players:      make(map[int64]player.Player),
		tournaments:  make(map[int64]tournament.Tournament),
		participants: make(map[int64]map[int64]struct{}),
	}
}

// removeMatchesLocked drops every match for which drop returns true.
func (s *Store) removeMatchesLocked(drop func(match.Match) bool) {
	kept := s.matches[:0]
	for _, m := range s.matches {
		if drop(m) {
			continue
		}
		kept = append(kept, m)
	}
	clear(s.matches[len(kept):])
	s.matches = kept
}

func (s *Store) participantsLocked(tournamentID int64) []player.Player {
	ids := make([]int64, 0, len(s.participants[tournamentID]))
	for id := range s.participants[tournamentID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.players[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) matchesLocked(tournamentID int64) []match.Match {
	out := make([]match.Match, 0)
	for _, m := range s.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out
}
