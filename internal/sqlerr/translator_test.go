package sqlerr

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTranslate_KnownCodes(t *testing.T) {
	want := map[Code]Translation{
		"P2000": {http.StatusInternalServerError, "Prisma Client initialization failed."},
		"P2001": {http.StatusInternalServerError, "Prisma Client is not connected to the database."},
		"P2002": {http.StatusConflict, "Prisma Client failed to authenticate against the database."},
		"P2003": {http.StatusBadRequest, "Prisma Client failed to connect to the database."},
		"P2004": {http.StatusInternalServerError, "Prisma Client query execution failed."},
		"P2005": {http.StatusInternalServerError, "Prisma Client transaction query execution failed."},
		"P2006": {http.StatusNotFound, "Prisma Client record not found."},
		"P2007": {http.StatusBadRequest, "Prisma Client invalid input value."},
		"P2008": {http.StatusForbidden, "Prisma Client permission denied."},
		"P2009": {http.StatusUnauthorized, "Prisma Client authentication required."},
		"P2010": {http.StatusBadRequest, "Prisma Client foreign key constraint violation."},
		"P2011": {http.StatusBadRequest, "Prisma Client unique constraint violation."},
		"P2012": {http.StatusBadRequest, "Prisma Client data validation error."},
		"P2013": {http.StatusBadRequest, "Prisma Client input value too long."},
		"P2014": {http.StatusBadRequest, "Prisma Client input value too short."},
		"P2015": {http.StatusBadRequest, "Prisma Client required field missing."},
		"P2016": {http.StatusBadRequest, "Prisma Client invalid cursor value."},
		"P2017": {http.StatusBadRequest, "Prisma Client invalid date or time value."},
		"P2018": {http.StatusBadRequest, "Prisma Client invalid enum value."},
		"P2019": {http.StatusBadRequest, "Prisma Client invalid numeric value."},
		"P2020": {http.StatusBadRequest, "Prisma Client invalid relation value."},
		"P2021": {http.StatusBadRequest, "Prisma Client invalid select or include value."},
		"P2022": {http.StatusBadRequest, "Prisma Client invalid orderBy value."},
		"P2023": {http.StatusBadRequest, "Prisma Client invalid where value."},
		"P2024": {http.StatusBadRequest, "Prisma Client invalid cursor value."},
		"P2025": {http.StatusBadRequest, "Prisma Client invalid batch payload."},
		"P2026": {http.StatusBadRequest, "Prisma Client invalid orderBy value."},
		"P2027": {http.StatusBadRequest, "Prisma Client invalid include value."},
		"P2028": {http.StatusBadRequest, "Prisma Client invalid select value."},
		"P2029": {http.StatusBadRequest, "Prisma Client invalid where value."},
		"P2030": {http.StatusBadRequest, "Prisma Client invalid distinct value."},
		"P2031": {http.StatusBadRequest, "Prisma Client invalid groupBy value."},
		"P2032": {http.StatusBadRequest, "Prisma Client invalid having value."},
		"P2033": {http.StatusBadRequest, "Prisma Client invalid limit value."},
		"P2034": {http.StatusBadRequest, "Prisma Client invalid skip value."},
	}

	if len(Mappings()) != len(want) {
		t.Fatalf("table has %d rows, want %d", len(Mappings()), len(want))
	}

	translator := NewTranslator(nil)
	for code, expected := range want {
		t.Run(string(code), func(t *testing.T) {
			got := translator.Translate(New(code, "raw driver message\nsecond line"))
			if got != expected {
				t.Errorf("Translate(%s) = %+v, want %+v", code, got, expected)
			}
		})
	}
}

func TestTranslate_UnknownCode(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"single newline", "x\ny", "xy"},
		{"many newlines", "\nInvalid `prisma.user.create()`\ninvocation:\n\n", "Invalid `prisma.user.create()`invocation:"},
		{"no newline", "plain message", "plain message"},
		{"empty", "", ""},
	}

	translator := NewTranslator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translator.Translate(New("P9999", tt.message))
			if got.Status != http.StatusInternalServerError {
				t.Errorf("Status = %d, want 500", got.Status)
			}
			if got.Message != tt.want {
				t.Errorf("Message = %q, want %q", got.Message, tt.want)
			}
		})
	}
}

func TestTranslate_LogsRawMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	NewTranslator(&logger).Translate(New("P9999", "x\ny"))

	out := buf.String()
	if !strings.Contains(out, `"message":"x\ny"`) {
		t.Errorf("raw message not logged, got %s", out)
	}
	if !strings.Contains(out, `"db_code":"P9999"`) {
		t.Errorf("code not logged, got %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("expected error level, got %s", out)
	}
}

func TestLookup(t *testing.T) {
	m, ok := Lookup(AuthenticationFailed)
	if !ok {
		t.Fatal("P2002 not found")
	}
	if m.Status != http.StatusConflict {
		t.Errorf("Status = %d, want 409", m.Status)
	}

	if _, ok := Lookup("P9999"); ok {
		t.Error("P9999 should not be in the table")
	}
	if Code("P9999").IsKnown() {
		t.Error("P9999 should not be known")
	}
}

func TestMappings_OrderedAndCopied(t *testing.T) {
	rows := Mappings()
	if rows[0].Code != InitializationFailed || rows[len(rows)-1].Code != InvalidSkipValue {
		t.Errorf("unexpected table order: first=%s last=%s", rows[0].Code, rows[len(rows)-1].Code)
	}

	rows[0].Message = "mutated"
	if m, _ := Lookup(InitializationFailed); m.Message == "mutated" {
		t.Error("Mappings must return a copy")
	}
}

func TestSanitizeMessage(t *testing.T) {
	if got := SanitizeMessage("a\nb\nc"); got != "abc" {
		t.Errorf("got %q", got)
	}
}
