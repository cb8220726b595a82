package tui

import (
	"context"
	"fmt"

	"shelter-registry/internal/adapters/shelterapi"
	"shelter-registry/internal/platform/cache"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const listCacheKey = "list"

// ShelterLister es lo que necesita la home para listar abrigos.
type ShelterLister interface {
	List(ctx context.Context) ([]shelterapi.Shelter, error)
}

type (
	openFormMsg       struct{}
	sheltersLoadedMsg struct {
		items  []shelterapi.Shelter
		cached bool
		err    error
	}
)

type shelterItem struct{ s shelterapi.Shelter }

func (i shelterItem) Title() string {
	if i.s.Verified {
		return i.s.Name + " ✔"
	}
	return i.s.Name
}

func (i shelterItem) Description() string {
	desc := i.s.Address
	if i.s.Capacity != nil {
		occupied := 0
		if i.s.ShelteredPeople != nil {
			occupied = *i.s.ShelteredPeople
		}
		desc += fmt.Sprintf(" • %d/%d", occupied, *i.s.Capacity)
	}
	if i.s.PetFriendly != nil && *i.s.PetFriendly {
		desc += " • aceita pets"
	}
	return desc
}

func (i shelterItem) FilterValue() string { return i.s.Name }

var (
	newBind     = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "novo abrigo"))
	refreshBind = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "atualizar"))
)

type listModel struct {
	ctx    context.Context
	lister ShelterLister
	store  *cache.Store

	list    list.Model
	loading bool
	err     error
}

func newListModel(ctx context.Context, lister ShelterLister, store *cache.Store) listModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Abrigos"
	l.Styles.Title = headerStyle
	l.SetStatusBarItemName("abrigo", "abrigos")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{newBind, refreshBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{newBind, refreshBind} }

	return listModel{
		ctx:    ctx,
		lister: lister,
		store:  store,
		list:   l,

		loading: true,
	}
}

// load lee de la caché; si la región fue invalidada (p.ej. tras un cadastro) va a la API.
func (m *listModel) load() tea.Cmd {
	m.loading = true
	ctx, lister, store := m.ctx, m.lister, m.store
	return func() tea.Msg {
		if store != nil {
			if v, ok := store.Get(cache.DefaultRegion, listCacheKey); ok {
				if items, ok := v.([]shelterapi.Shelter); ok {
					return sheltersLoadedMsg{items: items, cached: true}
				}
			}
		}
		items, err := lister.List(ctx)
		if err != nil {
			return sheltersLoadedMsg{err: err}
		}
		if store != nil {
			store.Set(cache.DefaultRegion, listCacheKey, items)
		}
		return sheltersLoadedMsg{items: items}
	}
}

func (m *listModel) setSize(w, h int) { m.list.SetSize(w, h) }

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sheltersLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			cmd := m.list.NewStatusMessage(fieldErrorStyle.Render("erro ao carregar: " + msg.err.Error()))
			return m, cmd
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, s := range msg.items {
			items = append(items, shelterItem{s: s})
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, newBind):
			return m, func() tea.Msg { return openFormMsg{} }
		case key.Matches(msg, refreshBind):
			if m.store != nil {
				m.store.ClearRegion(cache.DefaultRegion)
			}
			cmd := m.load()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.loading && len(m.list.Items()) == 0 {
		return headerStyle.Render("Abrigos") + "\n\ncarregando..."
	}
	return m.list.View()
}
