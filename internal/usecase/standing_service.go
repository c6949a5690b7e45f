package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
)

// StandingService ranks tournament participants and pairs the next round.
// Both operations are read-only.
type StandingService struct {
	tournamentRepo tournament.Repository
	standingRepo   standing.Repository
	oddPolicy      standing.OddPolicy
}

func NewStandingService(tournamentRepo tournament.Repository, standingRepo standing.Repository, oddPolicy standing.OddPolicy) *StandingService {
	if oddPolicy == "" {
		oddPolicy = standing.OddPolicyError
	}

	return &StandingService{
		tournamentRepo: tournamentRepo,
		standingRepo:   standingRepo,
		oddPolicy:      oddPolicy,
	}
}

// GetStandings returns one row per participant ordered by wins descending,
// ties broken by player id ascending. An unknown tournament is invalid input.
func (s *StandingService) GetStandings(ctx context.Context, tournamentID int64) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetStandings", tournamentAttr(tournamentID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return nil, err
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, storeError(err, "get tournament")
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%d does not exist", ErrInvalidInput, tournamentID)
	}

	rows, err := s.standingRepo.MatchSummary(ctx, tournamentID)
	if err != nil {
		return nil, storeError(err, "fetch match summary")
	}

	return standing.Rank(rows), nil
}

// GetNextRoundPairings pairs adjacent ranks of the current standings.
func (s *StandingService) GetNextRoundPairings(ctx context.Context, tournamentID int64) ([]standing.Pairing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetNextRoundPairings", tournamentAttr(tournamentID))
	defer span.End()

	rows, err := s.GetStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	pairings, err := standing.Pair(rows, s.oddPolicy)
	if err != nil {
		return nil, fmt.Errorf("pair tournament=%d: %w", tournamentID, err)
	}

	return pairings, nil
}

func (s *StandingService) OddPolicy() standing.OddPolicy {
	return s.oddPolicy
}
