package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) RegisterPlayer(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RegisterPlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if err := player.ValidateName(name); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.playerRepo.Create(ctx, name)
	if err != nil {
		return player.Player{}, storeError(err, "create player")
	}

	return item, nil
}

func (s *PlayerService) CountPlayers(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CountPlayers")
	defer span.End()

	total, err := s.playerRepo.Count(ctx)
	if err != nil {
		return 0, storeError(err, "count players")
	}

	return total, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer", playerAttr(playerID))
	defer span.End()

	if err := validateID("player", playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		if errors.Is(err, player.ErrNotFound) {
			return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
		}
		return storeError(err, "delete player")
	}

	return nil
}

func (s *PlayerService) DeleteAllPlayers(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeleteAllPlayers")
	defer span.End()

	if err := s.playerRepo.DeleteAll(ctx); err != nil {
		return storeError(err, "delete all players")
	}

	return nil
}
