package pager

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// KeyMap defines the pager bindings.
type KeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "close")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("b", "pgup"), key.WithHelp("b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("f", "pgdown", " "), key.WithHelp("f", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

type model struct {
	title   string
	content string
	keys    KeyMap
	view    viewport.Model
	ready   bool
	width   int
}

func newModel(title, content string) model {
	return model{
		title:   title,
		content: content,
		keys:    defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		viewHeight := max(1, msg.Height-2) // title bar and footer
		if !m.ready {
			m.view = viewport.New(msg.Width, viewHeight)
			m.view.SetContent(m.content)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = viewHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.view.SetYOffset(m.view.YOffset - 1)
		case key.Matches(msg, m.keys.Down):
			m.view.SetYOffset(m.view.YOffset + 1)
		case key.Matches(msg, m.keys.PageUp):
			m.view.SetYOffset(m.view.YOffset - m.view.Height)
		case key.Matches(msg, m.keys.PageDown):
			m.view.SetYOffset(m.view.YOffset + m.view.Height)
		case key.Matches(msg, m.keys.Top):
			m.view.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.view.GotoBottom()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(m.title, max(1, m.width), "…"))
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).
		Render("q close | j/k scroll | f/b page | g/G top/bottom")
	return title + "\n" + m.view.View() + "\n" + footer
}

// Show runs the pager over pre-rendered content and blocks until the
// operator closes it.
func Show(title, content string) error {
	program := tea.NewProgram(newModel(title, content), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
