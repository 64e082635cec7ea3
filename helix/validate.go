package helix

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	paramValidatorOnce sync.Once
	paramValidatorInst *validator.Validate
)

func paramValidator() *validator.Validate {
	paramValidatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			const maxSplits = 2
			name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]

			if name == "-" {
				return ""
			}

			return name
		})

		// Whitespace-only strings are treated as empty everywhere.
		_ = v.RegisterValidation("notblank", validators.NotBlank)

		paramValidatorInst = v
	})

	return paramValidatorInst
}

// validateParams checks a params struct before any request is built.
// The first failing field short-circuits the call.
func validateParams(params any) error {
	err := paramValidator().Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	return newValidationError(fieldErrs[0])
}

func newValidationError(fieldErr validator.FieldError) *ValidationError {
	field := fieldErr.Field()
	if field == "" {
		field = fieldErr.StructField()
	}

	kind, message := classifyFieldError(field, fieldErr)

	return &ValidationError{
		Field:   field,
		Message: message,
		kind:    kind,
	}
}

func classifyFieldError(field string, fieldErr validator.FieldError) (error, string) {
	param := fieldErr.Param()

	switch fieldErr.Tag() {
	case "required", "notblank":
		return ErrMissingParameter, field + " is required"
	case "oneof":
		return ErrInvalidEnumValue, fmt.Sprintf("%s must be one of [%s]", field, param)
	case "min", "gte", "gt":
		return ErrOutOfRange, fmt.Sprintf("%s must be at least %s", field, param)
	case "max", "lte", "lt":
		if fieldErr.Kind() == reflect.String {
			return ErrTooLong, fmt.Sprintf("%s must be at most %s characters", field, param)
		}

		return ErrOutOfRange, fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return ErrMissingParameter, fmt.Sprintf("%s failed validation on '%s'", field, fieldErr.Tag())
	}
}
