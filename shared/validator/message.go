package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required":  "{field} is required",
	"gte":       "{field} must be greater than or equal to {param}",
	"min":       "{field} must be greater than or equal to {param}",
	"lte":       "{field} must be less than or equal to {param}",
	"max":       "{field} must be less than or equal to {param}",
	"oneof":     "{field} must be one of {param}",
	"email":     "{field} must be a valid email address",
	"uuid":      "{field} must be a valid UUID",
	"datetime":  "{field} must match the format {param}",
	"timeofday": "{field} must be a time of day formatted HH:MM or HH:MM:SS",
}

// message renders the first field error that has a template. Field names
// come from the json tag.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		tmpl, ok := templates[fe.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer("{field}", fe.Field(), "{param}", fe.Param()).Replace(tmpl)
	}

	return fieldErrs.Error()
}
