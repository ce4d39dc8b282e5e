package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateForeignKeyError reports a foreign key violation as notFound, the
// parent row having been deleted concurrently. Other errors are returned as is.
func translateForeignKeyError(err error, notFound error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return notFound
	}
	return err
}
