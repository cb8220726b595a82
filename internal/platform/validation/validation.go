// Package validation envuelve go-playground/validator con los mensajes que
// ve el usuario final. Las reglas viven en los struct tags `validate:"..."`.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired = "Este campo deve ser preenchido"
	msgMin      = "O valor mínimo para este campo é %s"
	msgMax      = "O valor máximo para este campo é %s"
	msgInvalid  = "Valor inválido"
)

// FieldErrors: campo (nombre json) -> primer mensaje violado. Vacío = válido.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores se reportan con el nombre json del campo, no el de Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Check evalúa s (struct o puntero a struct) y devuelve los errores por campo.
// error != nil solo si s no es validable (uso incorrecto).
func (v *Validator) Check(s any) (FieldErrors, error) {
	err := v.v.Struct(s)
	if err == nil {
		return FieldErrors{}, nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil, fmt.Errorf("validation: %w", err)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validation: %w", err)
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = Message(fe)
	}
	return out, nil
}

// Message traduce una regla violada al texto que se muestra junto al campo.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min", "gte":
		return fmt.Sprintf(msgMin, fe.Param())
	case "max", "lte":
		return fmt.Sprintf(msgMax, fe.Param())
	default:
		return msgInvalid
	}
}
