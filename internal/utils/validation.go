package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationDetails flattens validator errors into field -> rule pairs for
// the error envelope. Other errors yield nil.
func ValidationDetails(err error) map[string]string {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return nil
	}

	details := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
