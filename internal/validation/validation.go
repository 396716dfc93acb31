// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields, lengths or matching fields) defined in struct
// tags and extracts validation errors into a format the client
// can understand
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used for every request payload.
// Custom tags are registered once here so DTOs can use them declaratively:
//
//	PasswordConfirm string `json:"passwordConfirm" validate:"required,match=Password"`
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names the way clients send them (json tag), so that
	// "passwordConfirm" comes back as "passwordConfirm", not "PasswordConfirm".
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagMatch, validateMatch)
	_ = v.RegisterValidation(TagPassword, validatePassword)

	return v
}

// Struct validates any struct against its `validate` tags.
//
// It returns validator.ValidationErrors on rule failures, which
// BindAndValidate turns into field-level errors.
func Struct(v any) error {
	return validate.Struct(v)
}

// jsonFieldName returns the json name of a struct field, falling back to the Go name.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.Split(fld.Tag.Get("json"), ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
