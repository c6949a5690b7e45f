package usecase

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
	"github.com/riskibarqy/swiss-tournament/internal/platform/logging"
)

// ReportMatchInput is the outcome of one played match.
type ReportMatchInput struct {
	TournamentID int64
	WinnerID     int64
	LoserID      int64
}

type MatchService struct {
	tournamentRepo tournament.Repository
	matchRepo      match.Repository
	logger         *logging.Logger
}

func NewMatchService(tournamentRepo tournament.Repository, matchRepo match.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

func (s *MatchService) ReportMatch(ctx context.Context, input ReportMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ReportMatch", tournamentAttr(input.TournamentID))
	defer span.End()

	item := match.Match{
		TournamentID: input.TournamentID,
		WinnerID:     input.WinnerID,
		LoserID:      input.LoserID,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, item.TournamentID)
	if err != nil {
		return match.Match{}, storeError(err, "get tournament")
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, item.TournamentID)
	}

	for _, playerID := range []int64{item.WinnerID, item.LoserID} {
		registered, err := s.tournamentRepo.IsParticipant(ctx, item.TournamentID, playerID)
		if err != nil {
			return match.Match{}, storeError(err, "check tournament participant")
		}
		if !registered {
			return match.Match{}, fmt.Errorf("%w: player=%d is not registered in tournament=%d", ErrInvalidInput, playerID, item.TournamentID)
		}
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		// A participant removed between the check above and the insert.
		if errors.Is(err, match.ErrInvalidParticipants) {
			return match.Match{}, errors.Mark(errors.Wrap(err, "create match"), ErrInvalidInput)
		}
		return match.Match{}, storeError(err, "create match")
	}

	s.logger.DebugContext(ctx, "match reported",
		"tournament_id", created.TournamentID,
		"winner_id", created.WinnerID,
		"loser_id", created.LoserID,
	)

	return created, nil
}

// ListMatches returns the recorded results of a tournament in report order.
func (s *MatchService) ListMatches(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches", tournamentAttr(tournamentID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return nil, err
	}

	_, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, storeError(err, "get tournament")
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}

	items, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, storeError(err, "list tournament matches")
	}
	if items == nil {
		items = []match.Match{}
	}

	return items, nil
}

func (s *MatchService) DeleteMatches(ctx context.Context, tournamentID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatches", tournamentAttr(tournamentID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return err
	}

	if err := s.matchRepo.DeleteByTournament(ctx, tournamentID); err != nil {
		return storeError(err, "delete tournament matches")
	}

	return nil
}

func (s *MatchService) DeleteAllMatches(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteAllMatches")
	defer span.End()

	if err := s.matchRepo.DeleteAll(ctx); err != nil {
		return storeError(err, "delete all matches")
	}

	return nil
}
