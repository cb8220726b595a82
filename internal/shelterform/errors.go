package shelterform

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"shelter-registry/internal/platform/validation"
)

// ValidationError es local al cliente: se muestra junto a cada campo, nunca como toast.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid draft: " + strings.Join(parts, "; ")
}

// SubmissionError es el fallo remoto del create. Message es lo que fue al toast.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string { return "submit shelter: " + e.Message }
func (e *SubmissionError) Unwrap() error { return e.Err }

// responseMessager lo implementan los errores que traen el mensaje del body de la respuesta.
type responseMessager interface {
	ResponseMessage() string
}

// SubmissionMessage elige el texto del toast: primero el mensaje de la respuesta
// del servidor, si no el error tal cual.
func SubmissionMessage(err error) string {
	if err == nil {
		return ""
	}
	var rm responseMessager
	if errors.As(err, &rm) {
		if msg := rm.ResponseMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
