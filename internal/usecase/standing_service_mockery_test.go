package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
	standingmock "github.com/riskibarqy/swiss-tournament/internal/mocks/domain/standing"
	tournamentmock "github.com/riskibarqy/swiss-tournament/internal/mocks/domain/tournament"
	"github.com/stretchr/testify/mock"
)

func TestStandingService_GetStandings_RanksUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyError)

	tournamentRepo.
		On("GetByID", mock.Anything, int64(7)).
		Return(tournament.Tournament{ID: 7, Name: "Spring Open"}, true, nil).
		Once()
	standingRepo.
		On("MatchSummary", mock.Anything, int64(7)).
		Return([]standing.Standing{
			{PlayerID: 4, Name: "Dana", Wins: 1, Matches: 2},
			{PlayerID: 2, Name: "Bo", Wins: 2, Matches: 2},
			{PlayerID: 1, Name: "Ari", Wins: 1, Matches: 2},
			{PlayerID: 3, Name: "Cy", Wins: 0, Matches: 2},
		}, nil).
		Once()

	rows, err := service.GetStandings(ctx, 7)
	if err != nil {
		t.Fatalf("get standings: %v", err)
	}

	wantOrder := []int64{2, 1, 4, 3}
	for i, id := range wantOrder {
		if rows[i].PlayerID != id {
			t.Fatalf("row %d: expected player %d, got %d", i, id, rows[i].PlayerID)
		}
	}
}

func TestStandingService_GetStandings_UnknownTournamentUsingMockery(t *testing.T) {
	t.Parallel()

	tournamentRepo := tournamentmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(tournamentRepo, standingRepo, "")

	tournamentRepo.
		On("GetByID", mock.Anything, int64(99)).
		Return(tournament.Tournament{}, false, nil).
		Once()

	_, err := service.GetStandings(context.Background(), 99)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	standingRepo.AssertNotCalled(t, "MatchSummary", mock.Anything, mock.Anything)
}

func TestStandingService_RejectsInvalidTournamentID(t *testing.T) {
	t.Parallel()

	reads := map[string]func(*StandingService, int64) error{
		"standings": func(s *StandingService, id int64) error {
			_, err := s.GetStandings(context.Background(), id)
			return err
		},
		"pairings": func(s *StandingService, id int64) error {
			_, err := s.GetNextRoundPairings(context.Background(), id)
			return err
		},
	}
	ids := []struct {
		name    string
		id      int64
		unknown bool
	}{
		{name: "zero", id: 0},
		{name: "negative", id: -1},
		{name: "unknown", id: 999, unknown: true},
	}

	for readName, read := range reads {
		for _, tt := range ids {
			t.Run(readName+"/"+tt.name, func(t *testing.T) {
				tournamentRepo := tournamentmock.NewRepository(t)
				standingRepo := standingmock.NewRepository(t)
				service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyBye)
				if tt.unknown {
					tournamentRepo.On("GetByID", mock.Anything, tt.id).Return(tournament.Tournament{}, false, nil).Once()
				}

				err := read(service, tt.id)
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput for id %d, got %v", tt.id, err)
				}
				standingRepo.AssertNotCalled(t, "MatchSummary", mock.Anything, mock.Anything)
			})
		}
	}
}

func TestStandingService_GetStandings_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	tournamentRepo := tournamentmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyError)
	cause := errors.New("connection reset")

	tournamentRepo.
		On("GetByID", mock.Anything, int64(1)).
		Return(tournament.Tournament{ID: 1}, true, nil).
		Once()
	standingRepo.
		On("MatchSummary", mock.Anything, int64(1)).
		Return(nil, cause).
		Once()

	_, err := service.GetStandings(context.Background(), 1)
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestStandingService_GetNextRoundPairingsUsingMockery(t *testing.T) {
	t.Parallel()

	summary := []standing.Standing{
		{PlayerID: 1, Name: "Ari", Wins: 1, Matches: 1},
		{PlayerID: 2, Name: "Bo", Wins: 0, Matches: 1},
		{PlayerID: 3, Name: "Cy", Wins: 1, Matches: 1},
	}

	t.Run("odd count rejected by default", func(t *testing.T) {
		tournamentRepo := tournamentmock.NewRepository(t)
		standingRepo := standingmock.NewRepository(t)
		service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyError)

		tournamentRepo.On("GetByID", mock.Anything, int64(5)).Return(tournament.Tournament{ID: 5}, true, nil).Once()
		standingRepo.On("MatchSummary", mock.Anything, int64(5)).Return(summary, nil).Once()

		_, err := service.GetNextRoundPairings(context.Background(), 5)
		if !errors.Is(err, ErrOddParticipantCount) {
			t.Fatalf("expected ErrOddParticipantCount, got %v", err)
		}
	})

	t.Run("bye policy pairs top ranks and gives bye to the last", func(t *testing.T) {
		tournamentRepo := tournamentmock.NewRepository(t)
		standingRepo := standingmock.NewRepository(t)
		service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyBye)

		tournamentRepo.On("GetByID", mock.Anything, int64(5)).Return(tournament.Tournament{ID: 5}, true, nil).Once()
		standingRepo.On("MatchSummary", mock.Anything, int64(5)).Return(summary, nil).Once()

		pairs, err := service.GetNextRoundPairings(context.Background(), 5)
		if err != nil {
			t.Fatalf("pairings: %v", err)
		}
		if len(pairs) != 2 {
			t.Fatalf("expected 2 pairings, got %d", len(pairs))
		}
		if pairs[0].Home.PlayerID != 1 || pairs[0].Away == nil || pairs[0].Away.PlayerID != 3 {
			t.Fatalf("expected Ari vs Cy, got %+v", pairs[0])
		}
		if !pairs[1].Bye || pairs[1].Home.PlayerID != 2 || pairs[1].Away != nil {
			t.Fatalf("expected bye for Bo, got %+v", pairs[1])
		}
		if service.OddPolicy() != standing.OddPolicyBye {
			t.Fatalf("unexpected odd policy %q", service.OddPolicy())
		}
	})

	t.Run("no participants yields no pairings", func(t *testing.T) {
		tournamentRepo := tournamentmock.NewRepository(t)
		standingRepo := standingmock.NewRepository(t)
		service := NewStandingService(tournamentRepo, standingRepo, standing.OddPolicyError)

		tournamentRepo.On("GetByID", mock.Anything, int64(6)).Return(tournament.Tournament{ID: 6}, true, nil).Once()
		standingRepo.On("MatchSummary", mock.Anything, int64(6)).Return([]standing.Standing{}, nil).Once()

		pairs, err := service.GetNextRoundPairings(context.Background(), 6)
		if err != nil {
			t.Fatalf("pairings: %v", err)
		}
		if len(pairs) != 0 {
			t.Fatalf("expected no pairings, got %+v", pairs)
		}
	})
}
