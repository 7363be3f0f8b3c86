// Package validation validates user input with the validator/v10 library
// and converts failures into user-facing errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/estantelabs/estante/internal/common"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in error messages so they match the wire fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})

	return v
}

// Validate checks a struct against its validate tags. On failure it returns
// a common.UserError listing every offending field, so the form can stay
// open with a single readable message.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", e.Field(), friendlyMessage(e)))
	}
	sort.Strings(messages)

	return common.NewUserError("preencha todos os campos obrigatórios: "+strings.Join(messages, "; "), err)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um e-mail válido"
	case "gte":
		return fmt.Sprintf("deve ser no mínimo %s", e.Param())
	case "lte":
		return fmt.Sprintf("deve ser no máximo %s", e.Param())
	default:
		return "é inválido"
	}
}
