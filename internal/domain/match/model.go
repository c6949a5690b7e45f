package match

import (
	"errors"
	"fmt"
)

// ErrInvalidParticipants is returned by a repository when a match names the
// same player twice or a player not registered in the tournament.
var ErrInvalidParticipants = errors.New("match players must be distinct tournament participants")

// Match is one recorded result. Matches are append-only.
type Match struct {
	ID           int64
	TournamentID int64
	WinnerID     int64
	LoserID      int64
}

func (m Match) Validate() error {
	if m.TournamentID <= 0 {
		return fmt.Errorf("tournament id must be positive")
	}
	if m.WinnerID <= 0 {
		return fmt.Errorf("winner id must be positive")
	}
	if m.LoserID <= 0 {
		return fmt.Errorf("loser id must be positive")
	}
	if m.WinnerID == m.LoserID {
		return fmt.Errorf("winner and loser must be different players")
	}

	return nil
}
