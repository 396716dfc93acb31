package sqlerr

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Translation is the client-facing outcome of translating a DatabaseError.
type Translation struct {
	Status  int
	Message string
}

// Translator turns DatabaseErrors into Translations.
//
// It is stateless apart from the logger and safe for concurrent use.
type Translator struct {
	logger *zerolog.Logger
}

// NewTranslator creates a Translator. A nil logger discards output.
func NewTranslator(logger *zerolog.Logger) *Translator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Translator{logger: logger}
}

// Translate looks dbErr's code up in the translation table.
//
// Known codes get the table's status and canned message. Unknown codes get
// a 500 and the original message with newlines stripped. The raw message is
// always logged first, since neither outcome shows it to the client verbatim.
func (t *Translator) Translate(dbErr *DatabaseError) Translation {
	event := t.logger.Error().
		Str("db_code", string(dbErr.Code))
	if dbErr.DatabaseCode != "" {
		event = event.Str("sqlstate", dbErr.DatabaseCode)
	}
	if dbErr.TableName != "" {
		event = event.Str("table", dbErr.TableName)
	}
	if dbErr.ConstraintName != "" {
		event = event.Str("constraint", dbErr.ConstraintName)
	}
	event.Msg(dbErr.Message)

	if m, ok := Lookup(dbErr.Code); ok {
		return Translation{Status: m.Status, Message: m.Message}
	}

	return Translation{
		Status:  http.StatusInternalServerError,
		Message: SanitizeMessage(dbErr.Message),
	}
}

// SanitizeMessage removes every newline from a driver message so it can be
// returned as a single-line client message.
func SanitizeMessage(message string) string {
	return strings.ReplaceAll(message, "\n", "")
}
