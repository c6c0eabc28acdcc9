package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint violations surface as typed sentinels so the service layer can
// translate them without inspecting driver errors. The database constraints,
// not the service's pre-checks, are what make concurrent writes safe.
var (
	ErrDuplicate  = errors.New("row violates a unique constraint")
	ErrForeignKey = errors.New("row references a missing record")
	ErrNotFound   = errors.New("record not found")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintError maps Postgres constraint-violation codes to the package
// sentinels, passing every other error through unchanged.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrForeignKey
		}
	}
	return err
}
