package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Report fields by their json name so error maps match the wire format
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Messages flattens validation errors into a field -> message map for the
// 422 response envelope.
func Messages(errs []*ErrorResponse) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, exists := out[e.FailedField]; exists {
			continue // keep the first failure per field
		}
		out[e.FailedField] = message(e)
	}
	return out
}

func message(e *ErrorResponse) string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("The %s field is required", e.FailedField)
	case "uuid_required":
		return fmt.Sprintf("The %s field is required", e.FailedField)
	case "max":
		return fmt.Sprintf("The %s field may not be greater than %s characters", e.FailedField, e.Value)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s", e.FailedField, e.Value)
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s", e.FailedField, e.Value)
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", e.FailedField, e.Value)
	default:
		return fmt.Sprintf("The %s field failed on rule '%s'", e.FailedField, e.Tag)
	}
}
