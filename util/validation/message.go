package validation

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":       "{field} is required",
	"gt":             "{field} must be greater than {param}",
	"gte":            "{field} must be greater than or equal to {param}",
	"lte":            "{field} must be less than or equal to {param}",
	"oneof":          "{field} must be one of {param}",
	"max":            "{field} must be at most {param} characters",
	"min":            "{field} must be at least {param} characters",
	"email":          "{field} must be a valid email address",
	"url":            "{field} must be a valid URL",
	"strongpassword": "{field} must be at least 8 characters and mix upper case, lower case, digits and symbols",
}

// message renders the first field error of err. Unknown tags fall back to
// the validator's own text.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			msg := messages[valErr.Tag()]
			if msg != "" {
				msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
				msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

				return "Please review submitted information. " + msg + "."
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
