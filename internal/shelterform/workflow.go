// Package shelterform implementa el ciclo de submit del formulario "Cadastrar novo abrigo":
// validar el draft, llamar al servicio de abrigos una sola vez y reaccionar al resultado
// (notificación + reset) sin depender de ninguna UI concreta.
package shelterform

import (
	"context"
	"errors"
	"sync"

	"shelter-registry/internal/platform/validation"
)

const (
	TitleSuccess = "Cadastro feita com sucesso"
	TitleFailure = "Ocorreu um erro ao tentar cadastrar"
)

var ErrSubmitInFlight = errors.New("submit already in flight")

type State int

const (
	Idle State = iota
	Validating
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ShelterService es el backend que persiste el abrigo.
type ShelterService interface {
	Create(ctx context.Context, d Draft) error
}

// Invalidator limpia la caché del cliente después de un cadastro exitoso.
type Invalidator func(all bool)

type Option func(*Workflow)

func WithInvalidator(fn Invalidator) Option {
	return func(w *Workflow) { w.invalidate = fn }
}

// WithValidator reemplaza el validador del schema (tests).
func WithValidator(v *validation.Validator) Option {
	return func(w *Workflow) { w.schema = v }
}

// Workflow es dueño exclusivo del draft mientras vive la página.
type Workflow struct {
	svc        ShelterService
	notifier   Notifier
	invalidate Invalidator
	schema     *validation.Validator

	mu       sync.Mutex
	draft    Draft
	state    State
	last     State
	errors   validation.FieldErrors
	inFlight bool
}

func New(svc ShelterService, notifier Notifier, opts ...Option) *Workflow {
	w := &Workflow{
		svc:      svc,
		notifier: notifier,
		schema:   validation.New(),
		draft:    DefaultDraft(),
		state:    Idle,
		last:     Idle,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.notifier == nil {
		w.notifier = NotifierFunc(func(Notification) {})
	}
	return w
}

func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Clone()
}

// SetField es el evento de cambio de un campo: pisa solo ese campo, no valida.
func (w *Workflow) SetField(f Field, raw string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.set(f, raw)
}

// Set aplica una edición programática sobre el draft.
func (w *Workflow) Set(edit func(*Draft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	edit(&w.draft)
}

// Validate evalúa el schema sobre el draft actual sin cambiar el estado.
func (w *Workflow) Validate() validation.FieldErrors {
	return w.check(w.Draft())
}

// Errors son los errores por campo de la última validación del submit.
func (w *Workflow) Errors() validation.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(validation.FieldErrors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

func (w *Workflow) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Last es el último resultado terminal (Success o Failed); Idle si nunca hubo submit.
func (w *Workflow) Last() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Reset vuelve el draft a los defaults y limpia los errores.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = DefaultDraft()
	w.errors = nil
}

// Submit corre validación -> create -> éxito|fallo y vuelve a Idle.
//   - nil: el abrigo se creó, se limpió la caché, se notificó y el draft volvió a defaults.
//   - *ValidationError: no hubo llamada remota ni notificación.
//   - *SubmissionError: el servicio falló; se notificó y el draft queda intacto.
//   - ErrSubmitInFlight: ya hay un submit en curso; no se llama al servicio.
//
// La llamada al servicio no se cancela aunque ctx se cancele.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}

	w.state = Validating
	draft := w.draft.Clone()
	fieldErrs := w.check(draft)
	if len(fieldErrs) > 0 {
		w.errors = fieldErrs
		w.last = Failed
		w.state = Idle
		w.mu.Unlock()
		return &ValidationError{Fields: fieldErrs}
	}

	w.errors = nil
	w.inFlight = true
	w.state = Submitting
	w.mu.Unlock()

	// si Create o el notifier hacen panic, el workflow no queda bloqueado en vuelo
	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.inFlight {
			w.inFlight = false
			w.last = Failed
			w.state = Idle
		}
	}()

	err := w.svc.Create(context.WithoutCancel(ctx), draft)

	if err != nil {
		msg := SubmissionMessage(err)
		w.finish(Failed)
		w.notifier.Notify(Notification{
			Title:       TitleFailure,
			Variant:     VariantDestructive,
			Description: msg,
		})
		return &SubmissionError{Message: msg, Err: err}
	}

	w.safeInvalidate()
	w.notifier.Notify(Notification{Title: TitleSuccess, Variant: VariantDefault})

	w.mu.Lock()
	w.draft = DefaultDraft()
	w.mu.Unlock()

	w.finish(Success)
	return nil
}

func (w *Workflow) finish(outcome State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = outcome
	w.state = Idle
	w.inFlight = false
}

// safeInvalidate: un fallo de la caché no afecta el resultado del cadastro.
func (w *Workflow) safeInvalidate() {
	if w.invalidate == nil {
		return
	}
	defer func() { _ = recover() }()
	w.invalidate(false)
}

func (w *Workflow) check(d Draft) validation.FieldErrors {
	errs, err := w.schema.Check(d)
	if err != nil {
		// Draft siempre es un struct; solo pasaría con un validador mal configurado.
		return validation.FieldErrors{"": err.Error()}
	}
	return errs
}
