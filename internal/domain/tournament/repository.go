package tournament

import "context"

// Repository describes tournament and participation persistence.
//
// Delete and DeleteAll remove the tournament together with its participants
// and its matches.
type Repository interface {
	Create(ctx context.Context, name string) (Tournament, error)
	GetByID(ctx context.Context, tournamentID int64) (Tournament, bool, error)
	Delete(ctx context.Context, tournamentID int64) error
	DeleteAll(ctx context.Context) error

	// AddParticipant returns ErrAlreadyRegistered for a duplicate pair.
	AddParticipant(ctx context.Context, tournamentID, playerID int64) error
	IsParticipant(ctx context.Context, tournamentID, playerID int64) (bool, error)
	CountParticipants(ctx context.Context, tournamentID int64) (int, error)
}
