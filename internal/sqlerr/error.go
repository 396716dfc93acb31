package sqlerr

import (
	"errors"
	"fmt"
)

// DatabaseError is an error raised by the data layer carrying a code.
//
// It is built once by the converters in this package (or by a repository)
// and never mutated afterwards. The optional table/column/constraint fields
// come from the driver and are only used for logging.
type DatabaseError struct {
	Code    Code
	Message string

	// DatabaseCode keeps the original driver code (e.g. the SQLSTATE "23505").
	DatabaseCode   string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

// New creates a DatabaseError with just a code and a message.
func New(code Code, message string) *DatabaseError {
	return &DatabaseError{Code: code, Message: message}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the driver error this one was converted from, if any.
func (e *DatabaseError) Unwrap() error {
	return e.driverErr
}

// ErrCode reports the Code of the first DatabaseError in err's chain.
// It returns an empty Code when there is none.
func ErrCode(err error) Code {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return ""
}
