package standing

import "context"

// Repository provides the pre-aggregated match summary of a tournament: one
// row per registered participant, ordered by wins descending.
type Repository interface {
	MatchSummary(ctx context.Context, tournamentID int64) ([]Standing, error)
}
