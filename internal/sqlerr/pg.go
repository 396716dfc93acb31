package sqlerr

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE values the converter knows about.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateUniqueViolation       = "23505"
	sqlStateForeignKeyViolation   = "23503"
	sqlStateNotNullViolation      = "23502"
	sqlStateCheckViolation        = "23514"
	sqlStateStringTooLong         = "22001"
	sqlStateInvalidText           = "22P02"
	sqlStateInvalidDatetimeFormat = "22007"
	sqlStateDatetimeOverflow      = "22008"
	sqlStateNumericOutOfRange     = "22003"
	sqlStateInsufficientPrivilege = "42501"
	sqlStateInvalidAuthSpec       = "28000"
	sqlStateInvalidPassword       = "28P01"
	sqlStateSerializationFailure  = "40001"
	sqlStateDeadlockDetected      = "40P01"
	sqlStateSyntaxError           = "42601"
	sqlStateUndefinedTable        = "42P01"
	sqlStateUndefinedColumn       = "42703"

	// sqlStateClassConnection prefixes every connection_exception SQLSTATE.
	sqlStateClassConnection = "08"
)

// MapCode maps a PostgreSQL SQLSTATE to a known Code.
//
// SQLSTATEs without a counterpart come back unchanged as a Code, so they
// are reported through the unknown-error path with the driver's message.
func MapCode(sqlState string) Code {
	switch sqlState {
	case sqlStateUniqueViolation:
		return UniqueViolation
	case sqlStateForeignKeyViolation:
		return ForeignKeyViolation
	case sqlStateNotNullViolation:
		return RequiredFieldMissing
	case sqlStateCheckViolation:
		return DataValidationError
	case sqlStateStringTooLong:
		return InputValueTooLong
	case sqlStateInvalidText:
		return InvalidInputValue
	case sqlStateInvalidDatetimeFormat, sqlStateDatetimeOverflow:
		return InvalidDateTimeValue
	case sqlStateNumericOutOfRange:
		return InvalidNumericValue
	case sqlStateInsufficientPrivilege:
		return PermissionDenied
	case sqlStateInvalidAuthSpec, sqlStateInvalidPassword:
		return AuthenticationFailed
	case sqlStateSerializationFailure, sqlStateDeadlockDetected:
		return TransactionFailed
	case sqlStateSyntaxError, sqlStateUndefinedTable, sqlStateUndefinedColumn:
		return QueryFailed
	}

	if strings.HasPrefix(sqlState, sqlStateClassConnection) {
		return ConnectionFailed
	}

	return Code(sqlState)
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into a DatabaseError.
//
// pgconn.PgError contains Postgres-specific fields like the SQLSTATE,
// table, column and constraint names. They are copied over for logging;
// the original error stays reachable through Unwrap.
func ConvertPgError(src *pgconn.PgError) *DatabaseError {
	return &DatabaseError{
		Code:           MapCode(src.Code),
		Message:        src.Message,
		DatabaseCode:   src.Code,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertConnectError converts a failed connection attempt into a DatabaseError.
func ConvertConnectError(src *pgconn.ConnectError) *DatabaseError {
	return &DatabaseError{
		Code:      NotConnected,
		Message:   src.Error(),
		driverErr: src,
	}
}

// NotFound wraps a "no rows" error into a RecordNotFound DatabaseError.
func NotFound(src error) *DatabaseError {
	return &DatabaseError{
		Code:      RecordNotFound,
		Message:   src.Error(),
		driverErr: src,
	}
}
