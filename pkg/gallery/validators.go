package gallery

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report JSON field names in errors instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a request struct's field constraints, translating the
// first failure into a *ValidationError. Requests failing here are never
// dispatched to the remote store.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if ferrs, ok := err.(validator.ValidationErrors); ok && len(ferrs) > 0 {
		fe := ferrs[0]
		return &ValidationError{Field: fe.Field(), Reason: "failed '" + fe.Tag() + "' validation"}
	}
	return &ValidationError{Reason: err.Error()}
}
