package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// TagMatch requires the field to equal the sibling field named by its param.
	TagMatch = "match"

	// TagPassword enforces password complexity.
	TagPassword = "password"

	// MessagePasswordTooWeak is reported when TagPassword fails.
	MessagePasswordTooWeak = "password too weak"
)

// MatchField checks that obj's target field equals its reference field.
//
// obj must be a struct or a pointer to one; target and reference are Go field
// names. Strings are compared byte for byte. On mismatch the failure is
// attached to the target field, under its json name.
func MatchField(obj any, target, reference string) error {
	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("validation: MatchField expects a struct, got %s", v.Kind())
	}

	targetField, ok := v.Type().FieldByName(target)
	if !ok {
		return fmt.Errorf("validation: unknown field %q", target)
	}
	referenceField, ok := v.Type().FieldByName(reference)
	if !ok {
		return fmt.Errorf("validation: unknown field %q", reference)
	}

	if fieldsEqual(v.FieldByIndex(targetField.Index), v.FieldByIndex(referenceField.Index)) {
		return nil
	}

	return CustomValidationErrors{{
		Field:   jsonFieldName(targetField),
		Message: "must match " + jsonFieldName(referenceField),
	}}
}

// validateMatch backs the `match=<Field>` tag.
func validateMatch(fl validator.FieldLevel) bool {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}

	reference := parent.FieldByName(fl.Param())
	if !reference.IsValid() {
		return false
	}

	return fieldsEqual(fl.Field(), reference)
}

func fieldsEqual(a, b reflect.Value) bool {
	if a.Kind() == reflect.String && b.Kind() == reflect.String {
		return a.String() == b.String()
	}
	if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() {
		return false
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// lineTerminators end a line for the password rule.
const lineTerminators = "\n\r\u2028\u2029"

// validatePassword backs the `password` tag.
func validatePassword(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return IsStrongPassword(fl.Field().String())
}

// IsStrongPassword reports whether the last line of s, after any leading
// dots, has an upper case letter, a lower case letter and at least one digit
// or special character. Underscore counts as a word character, not a special
// one.
func IsStrongPassword(s string) bool {
	if i := strings.LastIndexAny(s, lineTerminators); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		s = s[i+size:]
	}
	s = strings.TrimLeft(s, ".")

	var upper, lower, digitOrSpecial bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r == '_':
		default:
			digitOrSpecial = true
		}
	}

	return upper && lower && digitOrSpecial
}
