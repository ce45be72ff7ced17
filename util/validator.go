package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationDetail flattens a validator error into the field-level
// detail string surfaced in 422 responses.
func ValidationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(details, "; ")
}
