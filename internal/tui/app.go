package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/menu"
)

type state int

const (
	stateMenu state = iota
	stateForm
	stateRunning
	stateResult
)

type model struct {
	ctx     context.Context
	options menu.Options
	list    list.Model
	input   textinput.Model
	state   state

	current  menu.Option
	fieldIdx int
	answers  map[string]string

	output   string
	err      error
	width    int
	height   int
	quitting bool
}

type optionItem struct {
	entry menu.Entry
}

func (o optionItem) Title() string {
	return fmt.Sprintf("(%s) %s", o.entry.Shortcut, o.entry.Option)
}

func (o optionItem) Description() string { return "" }

func (o optionItem) FilterValue() string { return o.entry.Option.Name }

type resultMsg struct {
	result commands.Result
	err    error
}

func initialModel(ctx context.Context, options menu.Options) model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	items := make([]list.Item, 0, len(options))
	for _, e := range options {
		items = append(items, optionItem{entry: e})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, 0, 0)
	l.Title = "Bark"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.KeyMap.Quit.SetEnabled(false)

	return model{
		ctx:     ctx,
		options: options,
		list:    l,
		input:   ti,
		state:   stateMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateForm:
			return m.updateForm(msg)
		case stateResult:
			switch msg.String() {
			case "enter", "esc", " ":
				m.state = stateMenu
				m.output, m.err = "", nil
			}
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.input.Width = msg.Width - 20
		return m, nil

	case resultMsg:
		if msg.err == nil && msg.result.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.state = stateResult
		m.err = msg.err
		m.output = renderResult(msg.result)
		return m, nil
	}

	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if item, ok := m.list.SelectedItem().(optionItem); ok {
			return m.choose(item.entry.Option)
		}
		return m, nil
	}
	if opt, ok := m.options.Lookup(msg.String()); ok {
		return m.choose(opt)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) choose(opt menu.Option) (tea.Model, tea.Cmd) {
	m.current = opt
	m.answers = make(map[string]string)
	m.fieldIdx = 0
	if opt.Form == nil || len(opt.Form.Fields) == 0 {
		return m.run()
	}

	m.state = stateForm
	m.input.SetValue("")
	m.input.Placeholder = opt.Form.Fields[0].Label
	return m, m.input.Focus()
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = stateMenu
		return m, nil
	case "enter":
		field := m.current.Form.Fields[m.fieldIdx]
		value := strings.TrimSpace(m.input.Value())
		// Required questions are asked again until answered
		if field.Required && value == "" {
			return m, nil
		}
		m.answers[field.Key] = value
		m.fieldIdx++
		if m.fieldIdx >= len(m.current.Form.Fields) {
			m.input.Blur()
			return m.run()
		}
		m.input.SetValue("")
		m.input.Placeholder = m.current.Form.Fields[m.fieldIdx].Label
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) run() (tea.Model, tea.Cmd) {
	m.state = stateRunning
	opt, answers, ctx := m.current, m.answers, m.ctx
	return m, func() tea.Msg {
		res, err := opt.Choose(ctx, answers)
		return resultMsg{result: res, err: err}
	}
}

func renderResult(res commands.Result) string {
	if res.Bookmarks != nil && len(res.Bookmarks) == 0 {
		return "No bookmarks yet."
	}
	var buf bytes.Buffer
	_ = menu.Render(&buf, res)
	return strings.TrimRight(buf.String(), "\n")
}

var (
	titleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	switch m.state {
	case stateMenu:
		b.WriteString(m.list.View())
	case stateForm:
		b.WriteString(titleStyle.Render(m.current.Name))
		b.WriteString("\n\n")
		b.WriteString(m.current.Form.Fields[m.fieldIdx].Label + ":\n")
		b.WriteString(m.input.View())
		b.WriteString(helpStyle.Render("[Enter]next [Esc]back to menu"))
	case stateRunning:
		b.WriteString(titleStyle.Render(m.current.Name))
		b.WriteString("\n\nWorking...")
	case stateResult:
		b.WriteString(titleStyle.Render(m.current.Name))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		} else {
			b.WriteString(m.output)
		}
		b.WriteString(helpStyle.Render("Press ENTER to return to menu"))
	}

	return b.String()
}

// Run starts the interactive menu and blocks until the user quits.
func Run(ctx context.Context, options menu.Options) error {
	p := tea.NewProgram(initialModel(ctx, options), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
