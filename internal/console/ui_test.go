package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineUI_AskTrimsNewline(t *testing.T) {
	var out bytes.Buffer
	ui := NewLineUI(strings.NewReader("first\r\nsecond"), &out)

	answer, err := ui.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", answer)

	answer, err = ui.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", answer)

	_, err = ui.Ask("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestLineUI_Choose(t *testing.T) {
	var out bytes.Buffer
	ui := NewLineUI(strings.NewReader("2\n"), &out)

	answer, err := ui.Choose(Menu{Title: "Pick", Options: []string{"A", "B"}, Prompt: "? "})
	require.NoError(t, err)
	assert.Equal(t, "2", answer)
	assert.Equal(t, "\nPick\n1. A\n2. B\n? ", out.String())
}

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI(&bytes.Buffer{})
	assert.NotNil(t, ui.isTerminal)
}

func TestHuhUI_NoTTY(t *testing.T) {
	ui := &HuhUI{out: &bytes.Buffer{}, isTerminal: func() bool { return false }}

	_, err := ui.Choose(Menu{Title: "Pick", Options: []string{"A"}})
	assert.ErrorIs(t, err, errRequiresTerminal)

	_, err = ui.Ask("Name")
	assert.ErrorIs(t, err, errRequiresTerminal)
}

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestHuhUI_RunFormAbortMapsToErrAborted(t *testing.T) {
	ui := &HuhUI{out: &bytes.Buffer{}, isTerminal: func() bool { return true }}
	stubRunForm(t, func(form *huh.Form) error {
		assert.NotNil(t, form)
		return huh.ErrUserAborted
	})

	_, err := ui.Choose(Menu{Title: "Pick", Options: []string{"A", "B"}})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestHuhUI_RunFormErrorPassesThrough(t *testing.T) {
	ui := &HuhUI{out: &bytes.Buffer{}, isTerminal: func() bool { return true }}
	boom := errors.New("boom")
	stubRunForm(t, func(*huh.Form) error { return boom })

	_, err := ui.Ask("Name")
	assert.ErrorIs(t, err, boom)
}

func TestHuhUI_RunFormSuccess(t *testing.T) {
	ui := &HuhUI{out: &bytes.Buffer{}, isTerminal: func() bool { return true }}
	called := 0
	stubRunForm(t, func(*huh.Form) error {
		called++
		return nil
	})

	_, err := ui.Choose(Menu{Title: "Pick", Options: []string{"A"}})
	require.NoError(t, err)
	_, err = ui.Ask("Name")
	require.NoError(t, err)
	assert.Equal(t, 2, called)
}

func TestHuhUI_Print(t *testing.T) {
	var out bytes.Buffer
	ui := NewHuhUI(&out)
	ui.Print("a", "b")
	assert.Equal(t, "a\nb\n", out.String())
}

func TestFormFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, formFilter(nil, tea.InterruptMsg{}))

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, msg, formFilter(nil, msg))
}

func TestConsoleKeyMap(t *testing.T) {
	km := consoleKeyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
	assert.False(t, km.Select.Filter.Enabled())
}
