package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"shelter-registry/internal/shelterform"

	"github.com/AlecAivazis/survey/v2"
)

// clearToken en modo plain deja un campo opcional en null (survey no permite borrar el default).
const clearToken = "-"

// PrintNotifier escribe los toasts en w (modo plain).
func PrintNotifier(w io.Writer) shelterform.Notifier {
	return shelterform.NotifierFunc(func(n shelterform.Notification) {
		fmt.Fprintln(w, renderToast(n))
	})
}

// RunPlain pide los campos con survey, hace submit y repite hasta que el usuario termine.
// Los errores de validación se muestran en la etiqueta del campo en la siguiente vuelta.
func RunPlain(ctx context.Context, wf *shelterform.Workflow, opts ...survey.AskOpt) error {
	for {
		errs := wf.Errors()
		for _, f := range shelterform.Fields {
			if err := askField(wf, f, errs[string(f)], opts...); err != nil {
				return err
			}
		}

		err := wf.Submit(ctx)
		var verr *shelterform.ValidationError
		switch {
		case err == nil:
			again := false
			if err := survey.AskOne(&survey.Confirm{Message: "Cadastrar outro abrigo?"}, &again, opts...); err != nil {
				return err
			}
			if !again {
				return nil
			}
		case errors.As(err, &verr):
			continue
		default:
			retry := true
			if err := survey.AskOne(&survey.Confirm{Message: "Tentar novamente?", Default: true}, &retry, opts...); err != nil {
				return err
			}
			if !retry {
				return err
			}
		}
	}
}

func askField(wf *shelterform.Workflow, f shelterform.Field, fieldErr string, opts ...survey.AskOpt) error {
	label := fieldLabel(f)
	if fieldErr != "" {
		label = fmt.Sprintf("%s [%s]", label, fieldErr)
	}

	q := &survey.Input{
		Message: label,
		Default: wf.Draft().Value(f),
	}
	if isNullable(f) {
		q.Help = fmt.Sprintf("%q deixa o campo vazio", clearToken)
	}

	// El validator escribe el campo: si no parsea, survey vuelve a preguntar y el draft no cambia.
	validate := survey.WithValidator(func(ans interface{}) error {
		raw, _ := ans.(string)
		return wf.SetField(f, normalizeAnswer(f, raw))
	})

	var answer string
	return survey.AskOne(q, &answer, append(opts, validate)...)
}

func normalizeAnswer(f shelterform.Field, raw string) string {
	if isNullable(f) && strings.TrimSpace(raw) == clearToken {
		return ""
	}
	return raw
}

func isNullable(f shelterform.Field) bool {
	switch f {
	case shelterform.FieldName, shelterform.FieldAddress, shelterform.FieldVerified:
		return false
	default:
		return true
	}
}
