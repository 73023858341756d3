package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	InputView ViewState = iota
	HistoryView
)

// Model represents the TUI application state.
type Model struct {
	view      ViewState
	converter *tasks.Converter
	input     textinput.Model
	current   *models.Conversion
	history   list.Model
	width     int
	height    int
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model that decodes input with converter.
func NewModel(converter *tasks.Converter) *Model {
	input := textinput.New()
	input.Placeholder = "spotify:track:5sWHDYs0csV6RS48xBl0tH"
	input.CharLimit = 128
	input.Width = 48
	input.Focus()

	history := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	history.Title = "Saved Conversions"
	history.SetShowHelp(false)

	return &Model{
		view:      InputView,
		converter: converter,
		input:     input,
		history:   history,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.toggle):
			return m.toggleView()
		}

		switch m.view {
		case InputView:
			return m.handleInputKeys(msg)
		case HistoryView:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.view == InputView {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case InputView:
		return m.renderInput()
	case HistoryView:
		return m.renderHistory()
	default:
		return ""
	}
}

// Saved returns the conversions saved so far, newest first.
func (m *Model) Saved() []models.Conversion {
	items := m.history.Items()
	saved := make([]models.Conversion, 0, len(items))
	for _, item := range items {
		if ci, ok := item.(conversionItem); ok {
			saved = append(saved, ci.conversion)
		}
	}
	return saved
}

func (m *Model) toggleView() (tea.Model, tea.Cmd) {
	if m.view == InputView {
		m.view = HistoryView
		m.input.Blur()
		return m, nil
	}
	m.view = InputView
	return m, m.input.Focus()
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.save) {
		if m.current == nil || !m.current.OK() {
			return m, nil
		}
		cmd := m.history.InsertItem(0, conversionItem{conversion: *m.current})
		m.input.Reset()
		m.current = nil
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh decodes the current input. Empty input clears the result.
func (m *Model) refresh() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.current = nil
		return
	}
	conversion := m.converter.Convert(value)
	m.current = &conversion
}

func (m *Model) renderInput() string {
	title := styles.title.Render("Identifier Converter")

	var body string
	switch {
	case m.current == nil:
		body = styles.warn.Render("Paste a URI, base62 or base16 identifier")
	case !m.current.OK():
		body = styles.err.Render("✗ " + m.current.Err)
	default:
		c := m.current
		body = strings.Join([]string{
			styles.ok.Render("✓ " + c.Category),
			styles.label.Render("uri") + c.URI,
			styles.label.Render("base62") + c.Base62,
			styles.label.Render("base16") + c.Base16,
			styles.label.Render("raw") + c.Raw,
			styles.label.Render("uuid") + c.UUID,
		}, "\n")
	}

	saved := fmt.Sprintf("%d saved", len(m.history.Items()))
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s • %s", title, m.input.View(), body, saved, helpView)
}

func (m *Model) renderHistory() string {
	back := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "back"))
	helpView := m.help.ShortHelpView([]key.Binding{back, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.history.View(), helpView)
}
