package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/config"
	"github.com/riskibarqy/swiss-tournament/internal/domain/match"
	"github.com/riskibarqy/swiss-tournament/internal/domain/player"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
	"github.com/riskibarqy/swiss-tournament/internal/domain/tournament"
	cacherepo "github.com/riskibarqy/swiss-tournament/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/swiss-tournament/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/swiss-tournament/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/swiss-tournament/internal/interfaces/httpapi"
	"github.com/riskibarqy/swiss-tournament/internal/platform/cache"
	"github.com/riskibarqy/swiss-tournament/internal/platform/logging"
	"github.com/riskibarqy/swiss-tournament/internal/usecase"
)

type repositories struct {
	players     player.Repository
	tournaments tournament.Repository
	matches     match.Repository
	standings   standing.Repository
	close       func() error
}

// NewHTTPServer wires storage, services and the router. The returned close
// func releases the storage backend and must run after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CacheEnabled {
		repos = withReadCache(repos, cfg)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	playerSvc := usecase.NewPlayerService(repos.players)
	tournamentSvc := usecase.NewTournamentService(repos.tournaments, repos.players)
	matchSvc := usecase.NewMatchService(repos.tournaments, repos.matches, logger.Named("match"))
	standingSvc := usecase.NewStandingService(repos.tournaments, repos.standings, cfg.PairingOddPolicy)

	handler := httpapi.NewHandler(playerSvc, tournamentSvc, matchSvc, standingSvc, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		logger.Info("using in-memory store")
		return repositories{
			players:     memory.NewPlayerRepository(store),
			tournaments: memory.NewTournamentRepository(store),
			matches:     memory.NewMatchRepository(store),
			standings:   memory.NewStandingRepository(store),
			close:       func() error { return nil },
		}, nil
	case config.StoreDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("using postgres store", "db_name", DBNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
		return repositories{
			players:     postgres.NewPlayerRepository(db),
			tournaments: postgres.NewTournamentRepository(db),
			matches:     postgres.NewMatchRepository(db),
			standings:   postgres.NewStandingRepository(db),
			close:       db.Close,
		}, nil
	default:
		return repositories{}, errors.Newf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func withReadCache(repos repositories, cfg config.Config) repositories {
	store := cache.NewStore(cfg.CacheTTL)
	return repositories{
		players:     cacherepo.NewPlayerRepository(repos.players, store),
		tournaments: cacherepo.NewTournamentRepository(repos.tournaments, store),
		matches:     cacherepo.NewMatchRepository(repos.matches, store),
		standings:   cacherepo.NewStandingRepository(repos.standings, store),
		close:       repos.close,
	}
}
