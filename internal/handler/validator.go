package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// requestValidator checks driver request bodies. Field names in errors are
// the JSON names the client sent, not Go field names.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	if err := v.RegisterValidation("soil", validateSoil); err != nil {
		panic(err)
	}
	return v
}

// FormatValidationError maps each failing field to a short message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": ErrMsgInvalidRequest}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errs[e.Field()] = "required"
		case "soil":
			errs[e.Field()] = fmt.Sprintf("must be one of %s", soilNames())
		case "gt":
			errs[e.Field()] = fmt.Sprintf("must be greater than %s", e.Param())
		case "gte":
			errs[e.Field()] = fmt.Sprintf("must be at least %s", e.Param())
		case "max":
			errs[e.Field()] = fmt.Sprintf("must be at most %s characters", e.Param())
		default:
			errs[e.Field()] = "invalid"
		}
	}
	return errs
}

// validateSoil accepts the known soil types in any case. Empty is left to 'required'.
func validateSoil(fl validator.FieldLevel) bool {
	soil := fl.Field().String()
	return soil == "" || domain.SoilType(strings.ToLower(soil)).Valid()
}

func soilNames() string {
	names := make([]string, len(domain.SoilTypes))
	for i, s := range domain.SoilTypes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
