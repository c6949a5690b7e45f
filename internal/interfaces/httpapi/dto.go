package httpapi

import (
	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
)

type registerPlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type registerTournamentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type registerParticipantRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

type reportMatchRequest struct {
	WinnerID int64 `json:"winner_id" validate:"required,gt=0"`
	LoserID  int64 `json:"loser_id" validate:"required,gt=0,nefield=WinnerID"`
}

type playerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tournamentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type matchDTO struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournament_id"`
	WinnerID     int64 `json:"winner_id"`
	LoserID      int64 `json:"loser_id"`
}

type countDTO struct {
	Count int `json:"count"`
}

type standingDTO struct {
	Rank     int    `json:"rank"`
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Matches  int    `json:"matches"`
}

type entrantDTO struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

type pairingDTO struct {
	Table int         `json:"table"`
	Home  entrantDTO  `json:"home"`
	Away  *entrantDTO `json:"away,omitempty"`
	Bye   bool        `json:"bye"`
}

type pairingsDTO struct {
	OddPolicy string       `json:"odd_policy"`
	Pairings  []pairingDTO `json:"pairings"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{ID: v.ID, Name: v.Name}
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{ID: v.ID, Name: v.Name}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:           v.ID,
		TournamentID: v.TournamentID,
		WinnerID:     v.WinnerID,
		LoserID:      v.LoserID,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func standingsToDTO(rows []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for i, row := range rows {
		out = append(out, standingDTO{
			Rank:     i + 1,
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Wins:     row.Wins,
			Losses:   row.Losses(),
			Matches:  row.Matches,
		})
	}
	return out
}

func pairingsToDTO(policy standing.OddPolicy, pairs []standing.Pairing) pairingsDTO {
	items := make([]pairingDTO, 0, len(pairs))
	for _, p := range pairs {
		item := pairingDTO{
			Table: p.Table,
			Home:  entrantDTO{PlayerID: p.Home.PlayerID, Name: p.Home.Name},
			Bye:   p.Bye,
		}
		if p.Away != nil {
			item.Away = &entrantDTO{PlayerID: p.Away.PlayerID, Name: p.Away.Name}
		}
		items = append(items, item)
	}
	return pairingsDTO{OddPolicy: string(policy), Pairings: items}
}
