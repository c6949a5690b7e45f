package standing

import (
	"sort"

	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
)

// Aggregate folds a tournament's match log into ranked standings. Every
// participant gets a row, including those without matches. Matches involving
// players outside participants are ignored.
func Aggregate(participants []player.Player, matches []match.Match) []Standing {
	rows := make([]Standing, 0, len(participants))
	index := make(map[int64]int, len(participants))
	for _, p := range participants {
		if _, seen := index[p.ID]; seen {
			continue
		}
		index[p.ID] = len(rows)
		rows = append(rows, Standing{PlayerID: p.ID, Name: p.Name})
	}

	for _, m := range matches {
		winnerIdx, winnerOK := index[m.WinnerID]
		loserIdx, loserOK := index[m.LoserID]
		if !winnerOK || !loserOK || m.WinnerID == m.LoserID {
			continue
		}
		rows[winnerIdx].Wins++
		rows[winnerIdx].Matches++
		rows[loserIdx].Matches++
	}

	return Rank(rows)
}

// Rank orders standings by wins descending, breaking ties by player id
// ascending. The input slice is not modified.
func Rank(rows []Standing) []Standing {
	out := make([]Standing, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	return out
}
