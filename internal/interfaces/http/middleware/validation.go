package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes binding errors report JSON field names instead of Go
// struct field names. Called once when the router is built.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// ValidationMessage turns a binding error into a single client-facing
// sentence. Non-validator errors (malformed JSON) get the fallback.
func ValidationMessage(err error, fallback string) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return fallback
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, fieldMessage(e))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Field '" + e.Field() + "' is required"
	case "email":
		return "Field '" + e.Field() + "' must be a valid email address"
	case "max":
		return "Field '" + e.Field() + "' must be at most " + e.Param() + " characters"
	case "min":
		return "Field '" + e.Field() + "' must be at least " + e.Param() + " characters"
	case "oneof":
		return "Field '" + e.Field() + "' must be one of: " + e.Param()
	default:
		return "Field '" + e.Field() + "' is invalid"
	}
}
