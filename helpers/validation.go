package helpers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The frontend reads validation errors by their JSON field names
// (current_password, product_id, ...), so the validator must report the json
// tag instead of the Go field name.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ValidationErrors flattens a binding failure into the per-field error map the
// envelope carries on 422 responses.
func ValidationErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			field := fe.Field()
			out[field] = append(out[field], validationMessage(field, fe))
		}
		return out
	}

	out["request"] = []string{err.Error()}
	return out
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters", field, fe.Param())
	case "gte", "gt":
		return fmt.Sprintf("The %s must be at least %s", field, fe.Param())
	case "eqfield":
		return "Password confirmation does not match"
	default:
		return fmt.Sprintf("The %s field is invalid", field)
	}
}
