package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
)

type stubPlayerRepository struct {
	players   map[int64]player.Player
	nextID    int64
	createErr error
}

func newStubPlayerRepository() *stubPlayerRepository {
	return &stubPlayerRepository{players: make(map[int64]player.Player)}
}

func (s *stubPlayerRepository) Create(_ context.Context, name string) (player.Player, error) {
	if s.createErr != nil {
		return player.Player{}, s.createErr
	}
	s.nextID++
	item := player.Player{ID: s.nextID, Name: name}
	s.players[item.ID] = item
	return item, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	item, ok := s.players[playerID]
	return item, ok, nil
}

func (s *stubPlayerRepository) Count(_ context.Context) (int, error) {
	return len(s.players), nil
}

func (s *stubPlayerRepository) Delete(_ context.Context, playerID int64) error {
	if _, ok := s.players[playerID]; !ok {
		return player.ErrNotFound
	}
	delete(s.players, playerID)
	return nil
}

func (s *stubPlayerRepository) DeleteAll(_ context.Context) error {
	s.players = make(map[int64]player.Player)
	return nil
}

func TestPlayerService_RegisterAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewPlayerService(newStubPlayerRepository())

	item, err := service.RegisterPlayer(ctx, "  Chandra Nalaar  ")
	if err != nil {
		t.Fatalf("register player: %v", err)
	}
	if item.Name != "Chandra Nalaar" {
		t.Fatalf("expected trimmed name, got %q", item.Name)
	}

	total, err := service.CountPlayers(ctx)
	if err != nil {
		t.Fatalf("count players: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 player, got %d", total)
	}
}

func TestPlayerService_RegisterPlayer_InvalidName(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(newStubPlayerRepository())
	for _, name := range []string{"", "   ", strings.Repeat("x", player.MaxNameLength+1)} {
		if _, err := service.RegisterPlayer(context.Background(), name); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("name %q: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestPlayerService_RegisterPlayer_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newStubPlayerRepository()
	repo.createErr = errors.New("connection refused")
	service := NewPlayerService(repo)

	if _, err := service.RegisterPlayer(context.Background(), "Jace"); !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestPlayerService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newStubPlayerRepository()
	service := NewPlayerService(repo)
	item, _ := service.RegisterPlayer(ctx, "Liliana")

	if err := service.DeletePlayer(ctx, item.ID); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	if err := service.DeletePlayer(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.DeletePlayer(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, _ = service.RegisterPlayer(ctx, "Gideon")
	if err := service.DeleteAllPlayers(ctx); err != nil {
		t.Fatalf("delete all players: %v", err)
	}
	if total, _ := service.CountPlayers(ctx); total != 0 {
		t.Fatalf("expected no players, got %d", total)
	}
}
