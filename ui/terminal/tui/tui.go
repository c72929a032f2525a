package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/internal/store"
	"github.com/rog-golang-buddies/userboard/internal/users"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/cardui"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/detailui"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/formui"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// ********

const DefaultMutationDelay = 500 * time.Millisecond

// Styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	statusStyle = lipgloss.NewStyle().
			Inherit(statusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	statusText = lipgloss.NewStyle().Inherit(statusBarStyle)

	helpMenu = lipgloss.NewStyle().PaddingTop(1)

	docStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)
)

type appView int

const (
	cardsView appView = iota
	formView
	detailView
)

// Message types
type (
	fetchDone       struct{ err error }
	mutationSettled struct{}
)

type Option func(*Model)

// WithMutationDelay sets how long local mutations keep the loading overlay up.
func WithMutationDelay(d time.Duration) Option {
	return func(m *Model) { m.delay = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.log = l }
}

type Model struct {
	ctx    context.Context
	store  *store.Store
	lister store.Lister
	delay  time.Duration
	log    *zap.Logger

	curView appView
	cards   cardui.Model
	form    formui.Model
	detail  detailui.Model
	help    help.Model
	spinner spinner.Model
	width   int
}

func New(ctx context.Context, st *store.Store, l store.Lister, opts ...Option) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		ctx:     ctx,
		store:   st,
		lister:  l,
		delay:   DefaultMutationDelay,
		curView: cardsView,
		cards:   cardui.New(),
		form:    formui.New(),
		detail:  detailui.New(nil),
		help:    help.New(),
		spinner: sp,
	}

	for _, opt := range opts {
		opt(&m)
	}

	if m.log == nil {
		m.log = zap.NewNop()
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// fetch runs the users thunk off the update loop.
func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		return fetchDone{err: m.store.Run(m.ctx, store.FetchUsers(m.lister))}
	}
}

// settle clears the loading flag once the simulated latency has passed.
func (m Model) settle() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return mutationSettled{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	st := m.store.State()
	m.cards = m.cards.WithUsers(st.Users)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ctrl+c exits from every view
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDone:
		st = m.store.State()
		if msg.err != nil {
			m.log.Warn("fetching users failed", zap.String("message", st.Err), zap.Error(msg.err))
		} else {
			m.log.Info("fetched users", zap.Int("count", len(st.Users)))
		}
		m.cards = m.cards.WithUsers(st.Users)
		return m, nil

	case mutationSettled:
		m.store.Dispatch(store.SetLoading{Loading: false})
		return m, nil

	case formui.Submitted:
		return m.save(msg.Form)

	case formui.Cancelled:
		m.form = formui.New()
		m.curView = cardsView
		return m, nil

	case detailui.Closed:
		m.curView = cardsView
		return m, nil
	}

	// Call sub-model Updates
	switch m.curView {
	case formView:
		newForm, cmd := m.form.Update(msg)
		formModel, ok := newForm.(formui.Model)
		if !ok {
			panic("could not perform assertion on formui model")
		}
		m.form = formModel
		return m, cmd

	case detailView:
		newDetail, cmd := m.detail.Update(msg)
		detailModel, ok := newDetail.(detailui.Model)
		if !ok {
			panic("could not perform assertion on detailui model")
		}
		m.detail = detailModel
		return m, cmd
	}

	return m.updateCards(msg, st)
}

func (m Model) updateCards(msg tea.Msg, st store.State) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}

		// the loading overlay swallows input
		if st.Loading {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, keys.Refresh):
			return m, m.fetch()

		case key.Matches(msg, keys.New):
			m.form = formui.New()
			m.curView = formView
			return m, m.form.Init()

		case key.Matches(msg, keys.Edit):
			if u, ok := m.cards.Selected(); ok {
				m.form = formui.NewEdit(u)
				m.curView = formView
				return m, m.form.Init()
			}
			return m, nil

		case key.Matches(msg, keys.View):
			if u, ok := m.cards.Selected(); ok {
				st = m.store.Dispatch(store.SelectUser{User: u})
				m.detail = detailui.New(st.Selected)
				m.curView = detailView
			}
			return m, nil

		case key.Matches(msg, keys.Delete):
			if u, ok := m.cards.Selected(); ok {
				m.store.Dispatch(store.SetLoading{Loading: true})
				st = m.store.Dispatch(store.DeleteUser{ID: u.ID})
				m.cards = m.cards.WithUsers(st.Users)
				m.log.Info("deleted user", zap.Int("id", u.ID))
				return m, m.settle()
			}
			return m, nil
		}
	}

	newCards, cmd := m.cards.Update(msg)
	cardsModel, ok := newCards.(cardui.Model)
	if !ok {
		panic("could not perform assertion on cardui model")
	}
	m.cards = cardsModel
	return m, cmd
}

func (m Model) save(f users.Form) (tea.Model, tea.Cmd) {
	m.store.Dispatch(store.SetLoading{Loading: true})

	if f.Editing() {
		m.store.Dispatch(store.UpdateUser{User: f.User()})
		m.log.Info("updated user", zap.Int("id", f.ID))
	} else {
		u := f.User()
		u.ID = m.store.State().NextID()
		m.store.Dispatch(store.CreateUser{User: u})
		m.log.Info("created user", zap.Int("id", u.ID))
	}

	m.form = formui.New()
	m.curView = cardsView
	m.cards = m.cards.WithUsers(m.store.State().Users)
	return m, m.settle()
}

func (m Model) View() string {
	st := m.store.State()
	doc := strings.Builder{}

	doc.WriteString(titleStyle.Render("User Lists") + "\n")

	switch m.curView {
	case formView:
		doc.WriteString(m.place(m.form.View()))
	case detailView:
		doc.WriteString(m.place(m.detail.View()))
	default:
		if st.Loading && len(st.Users) == 0 {
			doc.WriteString("Fetching users...\n")
		} else {
			doc.WriteString(m.cards.WithUsers(st.Users).View())
		}
	}

	// Status bar
	{
		status := fmt.Sprintf("%d users", len(st.Users))
		if st.Loading {
			status = m.spinner.View() + " Loading..."
		}

		width := m.width - docStyle.GetHorizontalPadding()
		if width <= 0 {
			width = 96
		}

		w := lipgloss.Width
		statusKey := statusStyle.Render("STATUS")
		statusVal := statusText.Copy().
			Width(width - w(statusKey)).
			Render(status)

		bar := lipgloss.JoinHorizontal(lipgloss.Top, statusKey, statusVal)
		doc.WriteString("\n" + statusBarStyle.Width(width).Render(bar))
	}

	if m.curView == cardsView {
		doc.WriteString("\n" + helpMenu.Render(m.help.View(keys)))
	}

	return docStyle.Render(doc.String())
}

func (m Model) place(dialog string) string {
	if m.width == 0 {
		return dialog
	}
	return lipgloss.PlaceHorizontal(m.width-docStyle.GetHorizontalPadding(), lipgloss.Center, dialog)
}
