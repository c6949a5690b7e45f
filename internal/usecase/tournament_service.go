package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
	playerRepo     player.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository, playerRepo player.Repository) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
	}
}

func (s *TournamentService) RegisterTournament(ctx context.Context, name string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RegisterTournament")
	defer span.End()

	name = strings.TrimSpace(name)
	if err := tournament.ValidateName(name); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.tournamentRepo.Create(ctx, name)
	if err != nil {
		return tournament.Tournament{}, storeError(err, "create tournament")
	}

	return item, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, tournamentID int64) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetTournament", tournamentAttr(tournamentID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return tournament.Tournament{}, err
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return tournament.Tournament{}, storeError(err, "get tournament")
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}

	return item, nil
}

func (s *TournamentService) RegisterPlayerInTournament(ctx context.Context, tournamentID, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.RegisterPlayerInTournament", tournamentAttr(tournamentID), playerAttr(playerID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return err
	}
	if err := validateID("player", playerID); err != nil {
		return err
	}

	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return err
	}
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return storeError(err, "get player")
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	if err := s.tournamentRepo.AddParticipant(ctx, tournamentID, playerID); err != nil {
		if errors.Is(err, tournament.ErrAlreadyRegistered) {
			return fmt.Errorf("%w: player=%d already registered in tournament=%d", ErrConflict, playerID, tournamentID)
		}
		return storeError(err, "add tournament participant")
	}

	return nil
}

func (s *TournamentService) CountParticipants(ctx context.Context, tournamentID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CountParticipants", tournamentAttr(tournamentID))
	defer span.End()

	if _, err := s.GetTournament(ctx, tournamentID); err != nil {
		return 0, err
	}

	total, err := s.tournamentRepo.CountParticipants(ctx, tournamentID)
	if err != nil {
		return 0, storeError(err, "count tournament participants")
	}

	return total, nil
}

func (s *TournamentService) DeleteTournament(ctx context.Context, tournamentID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.DeleteTournament", tournamentAttr(tournamentID))
	defer span.End()

	if err := validateID("tournament", tournamentID); err != nil {
		return err
	}

	if err := s.tournamentRepo.Delete(ctx, tournamentID); err != nil {
		if errors.Is(err, tournament.ErrNotFound) {
			return fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
		}
		return storeError(err, "delete tournament")
	}

	return nil
}

func (s *TournamentService) DeleteAllTournaments(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.DeleteAllTournaments")
	defer span.End()

	if err := s.tournamentRepo.DeleteAll(ctx); err != nil {
		return storeError(err, "delete all tournaments")
	}

	return nil
}
