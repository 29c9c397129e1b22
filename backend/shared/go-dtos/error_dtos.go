// backend/shared/go-dtos/error_dtos.go
package dtos

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationErrorDetail is a shared DTO for structured validation error responses.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewValidationErrorDetails flattens validator errors into response details.
// Any other error becomes a single detail with an empty field.
func NewValidationErrorDetails(err error) []ValidationErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationErrorDetail{{Message: err.Error(), Code: "invalid"}}
	}

	out := make([]ValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out = append(out, ValidationErrorDetail{
			Field:   field,
			Message: validationMessage(field, fe),
			Code:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be >= " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}
