package usecase

import (
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/swiss-tournament/internal/domain/standing"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("resource conflict")
	ErrStore                 = errors.New("store failure")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrOddParticipantCount   = standing.ErrOddParticipantCount
)

// storeError keeps the cause chain of a repository failure while making it
// match ErrStore.
func storeError(err error, op string) error {
	return errors.Mark(errors.Wrap(err, op), ErrStore)
}

func validateID(kind string, id int64) error {
	if id <= 0 {
		return errors.Wrapf(ErrInvalidInput, "%s id must be a positive integer, got %d", kind, id)
	}
	return nil
}
