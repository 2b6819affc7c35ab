package usecase

import (
	"context"
	"errors"

	"agency_backoffice/internal/usecase/interfaces"
)

// runWithRetry runs fn in a transaction and runs it once more when it lost a
// race on a unique index or a compare-and-swap. The
// second run sees the winner's committed rows.
func runWithRetry(ctx context.Context, tx interfaces.ITransactor, fn func(ctx context.Context) error) error {
	err := tx.WithinTransaction(ctx, fn)
	if isConflict(err) {
		err = tx.WithinTransaction(ctx, fn)
	}
	return err
}

func isConflict(err error) bool {
	return errors.Is(err, interfaces.ErrDuplicateKey) || errors.Is(err, errLostRace)
}
