package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"shelter-registry/internal/platform/validation"
	"shelter-registry/internal/shelterform"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	toastTTL        = 4 * time.Second
	msgInvalidValue = "Valor inválido"
)

var fieldLabels = map[shelterform.Field]string{
	shelterform.FieldName:            "Nome do abrigo",
	shelterform.FieldAddress:         "Endereço",
	shelterform.FieldShelteredPeople: "Pessoas abrigadas",
	shelterform.FieldCapacity:        "Capacidade",
	shelterform.FieldVerified:        "Verificado (sim/não)",
	shelterform.FieldPetFriendly:     "Aceita pets (sim/não)",
	shelterform.FieldContact:         "Contato",
	shelterform.FieldPix:             "Chave Pix",
}

func fieldLabel(f shelterform.Field) string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

type (
	goBackMsg     struct{}
	submitDoneMsg struct{ err error }
	toastMsg      shelterform.Notification
	toastExpired  struct{ seq int }
)

type formModel struct {
	ctx context.Context
	wf  *shelterform.Workflow

	inputs []textinput.Model // uno por shelterform.Fields, mismo orden
	focus  int               // len(inputs) => botón Cadastrar

	// errores inline: validación del submit + valores que no parsean
	errs validation.FieldErrors
	// campos cuyo texto no parsea; el draft todavía tiene el valor anterior
	parseErrs validation.FieldErrors

	spinner    spinner.Model
	submitting bool

	toast    *shelterform.Notification
	toastSeq int
}

func newFormModel(ctx context.Context, wf *shelterform.Workflow) formModel {
	m := formModel{
		ctx:     ctx,
		wf:      wf,
		inputs:  make([]textinput.Model, len(shelterform.Fields)),
		errs:      validation.FieldErrors{},
		parseErrs: validation.FieldErrors{},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for i, f := range shelterform.Fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fieldLabel(f)
		ti.CharLimit = 200
		m.inputs[i] = ti
	}
	m.syncFromDraft()
	m.setFocus(0)
	return m
}

// syncFromDraft copia el draft del workflow a los inputs (al montar y tras un reset).
func (m *formModel) syncFromDraft() {
	d := m.wf.Draft()
	for i, f := range shelterform.Fields {
		m.inputs[i].SetValue(d.Value(f))
	}
}

func (m *formModel) setFocus(i int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focus = ((i % n) + n) % n

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m formModel) onButton() bool { return m.focus == len(m.inputs) }

func (m *formModel) submit() tea.Cmd {
	if m.submitting || m.wf.InFlight() {
		return nil
	}
	// lo que está en pantalla no es lo que se enviaría
	if len(m.parseErrs) > 0 {
		m.errs = m.mergeParseErrs(m.errs)
		return m.focusFirstError()
	}
	m.submitting = true

	wf, ctx := m.wf, m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return submitDoneMsg{err: wf.Submit(ctx)}
	})
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return goBackMsg{} }
		case "ctrl+s":
			cmd := m.submit()
			return m, cmd
		case "tab", "down":
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case "enter":
			if m.onButton() {
				cmd := m.submit()
				return m, cmd
			}
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}

		if m.onButton() {
			return m, nil
		}
		cmd := m.updateInput(msg)
		return m, cmd

	case submitDoneMsg:
		m.submitting = false
		var verr *shelterform.ValidationError
		switch {
		case msg.err == nil:
			m.syncFromDraft()
			m.errs = validation.FieldErrors{}
			m.parseErrs = validation.FieldErrors{}
			cmd := m.setFocus(0)
			return m, cmd
		case errors.As(msg.err, &verr):
			m.errs = m.mergeParseErrs(m.wf.Errors())
			cmd := m.focusFirstError()
			return m, cmd
		}
		// SubmissionError: el toast llega por el notifier, el draft queda como está.
		return m, nil

	case toastMsg:
		n := shelterform.Notification(msg)
		m.toast = &n
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpired{seq: seq} })

	case toastExpired:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateInput pasa la tecla al input con foco y, si cambió el valor, lo escribe en el draft.
func (m *formModel) updateInput(msg tea.Msg) tea.Cmd {
	i := m.focus
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	value := m.inputs[i].Value()
	if value == before {
		return cmd
	}

	field := shelterform.Fields[i]
	if err := m.wf.SetField(field, value); err != nil {
		m.errs[string(field)] = msgInvalidValue
		m.parseErrs[string(field)] = msgInvalidValue
		return cmd
	}
	delete(m.errs, string(field))
	delete(m.parseErrs, string(field))
	return cmd
}

// mergeParseErrs: un valor que no parsea gana sobre el error de validación del mismo campo.
func (m formModel) mergeParseErrs(errs validation.FieldErrors) validation.FieldErrors {
	out := validation.FieldErrors{}
	for k, v := range errs {
		out[k] = v
	}
	for k, v := range m.parseErrs {
		out[k] = v
	}
	return out
}

func (m *formModel) focusFirstError() tea.Cmd {
	for i, f := range shelterform.Fields {
		if m.errs.Has(string(f)) {
			return m.setFocus(i)
		}
	}
	return nil
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(backStyle.Render("‹ esc") + "  Cadastrar novo abrigo"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Cadastrar novo abrigo"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Adicione as informações necessarias para o cadastro do novo abrigo."))
	b.WriteString("\n")

	for i, f := range shelterform.Fields {
		ls := labelStyle
		if i == m.focus {
			ls = focusedLabelStyle
		}
		b.WriteString(ls.Render(fieldLabel(f)))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.errs[string(f)]; ok {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}

	switch {
	case m.submitting:
		b.WriteString(buttonBusyStyle.Render(m.spinner.View() + " Cadastrando..."))
	case m.onButton():
		b.WriteString(buttonFocusedStyle.Render("Cadastrar"))
	default:
		b.WriteString(buttonStyle.Render("Cadastrar"))
	}
	b.WriteString("\n")

	if m.toast != nil {
		b.WriteString(renderToast(*m.toast))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/↓ próximo • shift+tab/↑ anterior • ctrl+s cadastrar • esc voltar"))
	return b.String()
}

func renderToast(n shelterform.Notification) string {
	style := toastStyle
	if n.Variant == shelterform.VariantDestructive {
		style = toastDestructiveStyle
	}
	body := lipgloss.NewStyle().Bold(true).Render(n.Title)
	if n.Description != "" {
		body += "\n" + n.Description
	}
	return style.Render(body)
}
