// internal/app/system/inputval/inputval.go
package inputval

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks request structs against their `validate` tags. Field
// names in errors are the JSON names clients send.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Fields lists the JSON names of the fields that failed validation, in
// struct order. Non-validation errors yield nil.
func Fields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:])
	}
	return out
}
