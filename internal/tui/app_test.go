package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/bark/internal/commands"
	"github.com/user/bark/internal/db"
	"github.com/user/bark/internal/menu"
)

type stubCommand struct {
	result commands.Result
	err    error
	got    commands.Data
}

func (s *stubCommand) Execute(_ context.Context, data commands.Data) (commands.Result, error) {
	s.got = data
	return s.result, s.err
}

func testOptions(add, list *stubCommand) menu.Options {
	return menu.Options{
		{Shortcut: "A", Option: menu.Option{
			Name:    "Add a bookmark",
			Command: add,
			Form: &menu.Form{
				Fields: []menu.Field{
					{Key: "title", Label: "Title", Required: true},
					{Key: "notes", Label: "Notes"},
				},
				Build: func(a map[string]string) (commands.Data, error) {
					return commands.Data{"title": a["title"], "notes": a["notes"]}, nil
				},
			},
		}},
		{Shortcut: "B", Option: menu.Option{Name: "List bookmarks by date", Command: list}},
		{Shortcut: "Q", Option: menu.Option{Name: "Quit", Command: commands.Quit{}}},
	}
}

func typeText(m model, s string) model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func press(m model, k tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(model), cmd
}

// drain runs cmd and feeds its message back into the model.
func drain(t *testing.T, m model, cmd tea.Cmd) (model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	next, out := m.Update(cmd())
	return next.(model), out
}

func TestInitialModel_MenuFocused(t *testing.T) {
	m := initialModel(context.Background(), testOptions(&stubCommand{}, &stubCommand{}))

	assert.Equal(t, stateMenu, m.state)
	assert.Len(t, m.list.Items(), 3)
	assert.Equal(t, "(A) Add a bookmark", m.list.Items()[0].(optionItem).Title())
}

func TestShortcutWithoutFormRunsCommand(t *testing.T) {
	list := &stubCommand{result: commands.Result{Bookmarks: []db.Bookmark{{ID: 1, Title: "go", URL: "https://go.dev", DateAdded: "d"}}}}
	m := initialModel(context.Background(), testOptions(&stubCommand{}, list))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = next.(model)
	assert.Equal(t, stateRunning, m.state)

	m, _ = drain(t, m, cmd)
	assert.Equal(t, stateResult, m.state)
	assert.Nil(t, list.got)
	assert.Contains(t, m.View(), "1\tgo\thttps://go.dev\t\td")

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, stateMenu, m.state)
}

func TestFormCollectsAnswers(t *testing.T) {
	add := &stubCommand{result: commands.Result{Message: "Bookmark added!"}}
	m := initialModel(context.Background(), testOptions(add, &stubCommand{}))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}})
	m = next.(model)
	require.Equal(t, stateForm, m.state)

	// required field is asked again while empty
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.fieldIdx)

	m = typeText(m, "Go")
	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.fieldIdx)

	m = typeText(m, "docs")
	m, cmd = press(m, tea.KeyEnter)
	assert.Equal(t, stateRunning, m.state)

	m, _ = drain(t, m, cmd)
	assert.Equal(t, commands.Data{"title": "Go", "notes": "docs"}, add.got)
	assert.Contains(t, m.View(), "Bookmark added!")
}

func TestEscLeavesForm(t *testing.T) {
	m := initialModel(context.Background(), testOptions(&stubCommand{}, &stubCommand{}))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(model)

	m, _ = press(m, tea.KeyEscape)
	assert.Equal(t, stateMenu, m.state)
}

func TestErrorIsShownDistinctly(t *testing.T) {
	list := &stubCommand{err: errors.New("disk on fire")}
	m := initialModel(context.Background(), testOptions(&stubCommand{}, list))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m, _ = drain(t, next.(model), cmd)
	assert.Contains(t, m.View(), "Error: disk on fire")
}

func TestQuitOption(t *testing.T) {
	m := initialModel(context.Background(), testOptions(&stubCommand{}, &stubCommand{}))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m, out := drain(t, next.(model), cmd)
	assert.True(t, m.quitting)
	require.NotNil(t, out)
	assert.IsType(t, tea.QuitMsg{}, out())
}

func TestEmptyListMessage(t *testing.T) {
	assert.Equal(t, "No bookmarks yet.", renderResult(commands.Result{Bookmarks: []db.Bookmark{}}))
}
