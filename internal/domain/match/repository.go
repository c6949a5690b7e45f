package match

import "context"

type Repository interface {
	Create(ctx context.Context, item Match) (Match, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Match, error)
	DeleteByTournament(ctx context.Context, tournamentID int64) error
	DeleteAll(ctx context.Context) error
}
