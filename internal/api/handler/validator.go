package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ruleMessages renders a failed rule for a field named by its JSON key.
var ruleMessages = map[string]func(field, param string) string{
	"required": func(f, _ string) string { return f + " is required" },
	"url":      func(f, _ string) string { return f + " must be an absolute URL" },
	"gte":      func(f, p string) string { return fmt.Sprintf("%s must be at least %s", f, p) },
	"oneof": func(f, p string) string {
		return fmt.Sprintf("%s must be one of: %s", f, strings.ReplaceAll(p, " ", ", "))
	},
}

// requestValidator adapts go-playground/validator to echo.Validator. Field
// names in messages follow the request's JSON keys, not the Go names.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &requestValidator{v: v}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	return name
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}

	problems := make([]string, len(fields))
	for i, fe := range fields {
		if render, ok := ruleMessages[fe.Tag()]; ok {
			problems[i] = render(fe.Field(), fe.Param())
		} else {
			problems[i] = fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
		}
	}
	return errors.New(strings.Join(problems, "; "))
}
