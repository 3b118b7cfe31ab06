package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"flavours/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	arrayIndexRegex = regexp.MustCompile(`\[\d+\]`)
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// RegisterValidation registers a custom validation tag on the shared validator
// instance. Domain packages call this from their init functions.
func RegisterValidation(tag string, fn val.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// RegisterStructValidation registers cross-field validation for the given types.
func RegisterStructValidation(fn val.StructLevelFunc, types ...any) {
	validate.RegisterStructValidation(fn, types...)
}

// ValidateStruct performs validation on the struct using the validator package.
// https://github.com/go-playground/validator
//
// Constraint violations are collected into one message list per field path and
// returned as a failure.Validation; any other error is returned as a bad
// request. A nil return means the struct is valid.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	fields := make(map[string][]string)

	for _, valErr := range valErrors {
		path := fieldPath(valErr.Namespace())
		msg := message(valErr, path)

		grouped := arrayIndexRegex.ReplaceAllString(path, "")
		fields[grouped] = append(fields[grouped], msg)
	}

	return failure.Validation(fields) //nolint:wrapcheck
}

// ValidateVar validates a single variable against the given tag.
func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	return nil
}

// fieldPath strips the root struct name from a namespace, leaving the
// JSON-tagged path, e.g. "BookingRequest.contact.date" -> "contact.date".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}
