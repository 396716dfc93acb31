package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		code     string
		wantCode string
	}{
		{"explicit code", http.StatusConflict, "taken", "P2002", "P2002"},
		{"status text code", http.StatusForbidden, "nope", "", "FORBIDDEN"},
		{"internal", http.StatusInternalServerError, "boom", "", "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(tt.status, tt.message, tt.code)
			if err.Status != tt.status {
				t.Errorf("Status = %d, want %d", err.Status, tt.status)
			}
			if err.Message != tt.message {
				t.Errorf("Message = %q, want %q", err.Message, tt.message)
			}
			if err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", err.Code, tt.wantCode)
			}
		})
	}
}

func TestHTTPError_JSONShape(t *testing.T) {
	body, err := json.Marshal(FromStatus(http.StatusConflict, "duplicate", "P2002"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"statusCode":409,"message":"duplicate"}`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}

	body, err = json.Marshal(NewBadRequestError("Validation failed", nil, []FieldError{
		{Field: "name", Error: "is required"},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want = `{"statusCode":400,"message":"Validation failed","errors":[{"field":"name","error":"is required"}]}`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("missing", nil))

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("expected wrapped HTTPError to match by type")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Errorf("errors.As did not recover the 404, got %+v", httpErr)
	}
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewBadRequestError("original", nil, nil)
	copied := base.WithMessage("replaced")

	if base.Message != "original" {
		t.Errorf("base mutated: %q", base.Message)
	}
	if copied.Message != "replaced" || copied.Status != http.StatusBadRequest {
		t.Errorf("unexpected copy: %+v", copied)
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Bad Request"); got != "BAD_REQUEST" {
		t.Errorf("got %q", got)
	}
}
