package standing

import "fmt"

// Pair builds next-round pairings from ranked standings: rank 1 meets rank 2,
// rank 3 meets rank 4 and so on. With an odd count, OddPolicyBye gives the
// lowest-ranked player a bye and any other policy returns
// ErrOddParticipantCount.
func Pair(ranked []Standing, policy OddPolicy) ([]Pairing, error) {
	rows := ranked
	var bye *Standing
	if len(rows)%2 != 0 {
		if policy != OddPolicyBye {
			return nil, fmt.Errorf("%w: %d participants", ErrOddParticipantCount, len(rows))
		}
		last := rows[len(rows)-1]
		bye = &last
		rows = rows[:len(rows)-1]
	}

	out := make([]Pairing, 0, len(rows)/2+1)
	for i := 0; i+1 < len(rows); i += 2 {
		away := entrantOf(rows[i+1])
		out = append(out, Pairing{
			Table: len(out) + 1,
			Home:  entrantOf(rows[i]),
			Away:  &away,
		})
	}
	if bye != nil {
		out = append(out, Pairing{
			Table: len(out) + 1,
			Home:  entrantOf(*bye),
			Bye:   true,
		})
	}

	return out, nil
}

func entrantOf(s Standing) Entrant {
	return Entrant{PlayerID: s.PlayerID, Name: s.Name}
}
