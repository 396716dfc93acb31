package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/usersvc/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If *DatabaseError: translated through the code table
//   - If pgconn.PgError / pgconn.ConnectError / ErrNoRows: converted to a
//     DatabaseError first, then translated
//   - Otherwise: errs.NewInternalServerError
//
// The global HTTP error handler calls this for every error that is not
// already an HTTP error, so repositories can return driver errors as-is.
func HandleError(err error, logger *zerolog.Logger) error {
	// If it's already an HTTPError, don't re-wrap it.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	dbErr := toDatabaseError(err)
	if dbErr == nil {
		// Unknown errors should not leak details to clients.
		return errs.NewInternalServerError()
	}

	t := NewTranslator(logger).Translate(dbErr)

	return errs.FromStatus(t.Status, t.Message, string(dbErr.Code))
}

// toDatabaseError finds or builds the DatabaseError behind err.
// It returns nil if err did not come from the database.
func toDatabaseError(err error) *DatabaseError {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ConvertConnectError(connectErr)
	}

	// Both pgx and database/sql define ErrNoRows.
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NotFound(err)
	}

	return nil
}

// IsDatabaseError reports whether HandleError would translate err
// through the code table.
func IsDatabaseError(err error) bool {
	return toDatabaseError(err) != nil
}
