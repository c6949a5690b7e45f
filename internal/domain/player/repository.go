package player

import "context"

// Repository describes player persistence needs from use cases.
//
// Delete and DeleteAll cascade to tournament participation and to every match
// the removed players took part in.
type Repository interface {
	Create(ctx context.Context, name string) (Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, playerID int64) error
	DeleteAll(ctx context.Context) error
}
