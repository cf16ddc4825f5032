package orderrepo

import (
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify wraps a driver failure into errs.PersistenceError, keeping the
// postgres SQLSTATE when the server reported one.
func classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewPersistenceError(operation, pgErr.Code, err)
	}

	return errs.NewPersistenceError(operation, "", err)
}
