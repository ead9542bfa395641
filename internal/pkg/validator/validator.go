package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the tagged fields of v and returns a field->tag map of
// failures, or nil when valid.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
