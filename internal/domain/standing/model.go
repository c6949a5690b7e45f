package standing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOddParticipantCount = errors.New("odd participant count")

// Standing is one participant's cumulative record within a tournament.
type Standing struct {
	PlayerID int64
	Name     string
	Wins     int
	Matches  int
}

func (s Standing) Losses() int {
	return s.Matches - s.Wins
}

// Entrant identifies one side of a pairing.
type Entrant struct {
	PlayerID int64
	Name     string
}

// Pairing schedules one match of the next round. Away is nil when Bye is set.
type Pairing struct {
	Table int
	Home  Entrant
	Away  *Entrant
	Bye   bool
}

// OddPolicy decides what happens when standings cannot be split into pairs.
type OddPolicy string

const (
	OddPolicyError OddPolicy = "error"
	OddPolicyBye   OddPolicy = "bye"
)

func ParseOddPolicy(v string) (OddPolicy, error) {
	switch OddPolicy(strings.ToLower(strings.TrimSpace(v))) {
	case "", OddPolicyError:
		return OddPolicyError, nil
	case OddPolicyBye:
		return OddPolicyBye, nil
	default:
		return "", fmt.Errorf("invalid odd policy %q: valid values are %s, %s", v, OddPolicyError, OddPolicyBye)
	}
}
