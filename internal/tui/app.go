// Package tui es la página "Cadastrar novo abrigo" en terminal: una home con la lista
// de abrigos y el formulario que maneja shelterform.Workflow.
package tui

import (
	"context"

	"shelter-registry/internal/platform/cache"
	"shelter-registry/internal/platform/logger"
	"shelter-registry/internal/shelterform"

	tea "github.com/charmbracelet/bubbletea"
)

type Deps struct {
	Workflow *shelterform.Workflow
	Toasts   shelterform.ChanNotifier // el mismo notifier con el que se creó el Workflow
	Shelters ShelterLister
	Cache    *cache.Store
	Log      logger.Logger
}

type view int

const (
	viewList view = iota
	viewForm
)

type App struct {
	deps Deps
	view view
	list listModel
	form formModel
}

func NewApp(ctx context.Context, deps Deps) App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return App{
		deps: deps,
		view: viewList,
		list: newListModel(ctx, deps.Shelters, deps.Cache),
		form: newFormModel(ctx, deps.Workflow),
	}
}

func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(NewApp(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func waitForToast(ch shelterform.ChanNotifier) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg(n)
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.list.load(), waitForToast(a.deps.Toasts))
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.list.setSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.view == viewList && msg.String() == "q" && !a.list.list.SettingFilter() {
			return a, tea.Quit
		}

	case openFormMsg:
		a.view = viewForm
		cmd := a.form.setFocus(0)
		return a, cmd

	case goBackMsg:
		a.view = viewList
		cmd := a.list.load()
		return a, cmd

	case toastMsg:
		a.deps.Log.Info("notification", map[string]any{
			"title":   msg.Title,
			"variant": string(msg.Variant),
		})
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, tea.Batch(cmd, waitForToast(a.deps.Toasts))

	case sheltersLoadedMsg:
		if msg.err != nil {
			a.deps.Log.Warn("list shelters failed", map[string]any{"err": msg.err})
		}
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case submitDoneMsg, toastExpired:
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewForm:
		a.form, cmd = a.form.Update(msg)
	default:
		a.list, cmd = a.list.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.view == viewForm {
		return a.form.View()
	}
	return a.list.View()
}
