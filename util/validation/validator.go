package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/ddc-studio/portfolio-api/domain"
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON names, which is what API callers send.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	if err := validate.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(err)
	}
}

// strongPassword requires at least 8 characters mixing lower case, upper
// case, digits and symbols.
func strongPassword(fl val.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Struct validates data against its `validate` tags. Failures come back as
// domain validation errors with a readable message.
func Struct(data any) error {
	if err := validate.Struct(data); err != nil {
		var invalid *val.InvalidValidationError
		if errors.As(err, &invalid) {
			return domain.Unexpected("validation could not run", err)
		}
		return domain.ValidationWrap(message(err), err)
	}
	return nil
}

// Var validates a single value against tag.
func Var(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return domain.ValidationWrap(message(err), err)
	}
	return nil
}
