package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one offending payload field and the constraint it broke,
// e.g. {Field: "buyer_email", Constraint: "email"}.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Constraint)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a payload against its schema tags. Returns nil or a
// *ValidationError listing every offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		c := fe.Tag()
		if fe.Param() != "" {
			c = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Constraint: c})
	}
	return out
}
