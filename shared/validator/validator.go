package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var errEmptyBody = errors.New("request body is required")

// ParseTimeOfDay accepts HH:MM and HH:MM:SS wall clock values.
func ParseTimeOfDay(value string) (time.Time, error) {
	for _, layout := range []string{constant.TimeOfDayFormat, constant.TimeOfDayFull} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time of day %q", value)
}

func registerTimeOfDayValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := ParseTimeOfDay(str)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timeofday", registerTimeOfDayValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if r == nil {
		return failure.BadRequest(errEmptyBody) //nolint:wrapcheck
	}

	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if errors.Is(err, io.EOF) {
		return failure.BadRequest(errEmptyBody) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
