package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/terminal"
)

var errRequiresTerminal = errors.New(messages.ConsoleRequiresTerminal)

// HuhUI implements UI using charmbracelet/huh forms.
// Forms render on stderr; printed results go to out.
type HuhUI struct {
	out        io.Writer
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that prints results to out.
func NewHuhUI(out io.Writer) *HuhUI {
	return &HuhUI{out: out, isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errRequiresTerminal
}

// consoleKeyMap binds both Esc and Ctrl+C to abort, which leaves the console.
func consoleKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "exit"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// formFilter converts InterruptMsg to QuitMsg so bubbletea clears the form
// before returning.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(consoleKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Choose renders menu as a single-choice select. The answer is the chosen
// option number.
func (ui *HuhUI) Choose(menu Menu) (string, error) {
	opts := make([]huh.Option[string], len(menu.Options))
	for i, o := range menu.Options {
		number := strconv.Itoa(i + 1)
		opts[i] = huh.NewOption(fmt.Sprintf(messages.ConsoleMenuOptionFmt, i+1, o), number)
	}
	var answer string
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(menu.Title).
				Options(opts...).
				Value(&answer),
		),
	))
	return answer, err
}

// Ask renders a text input prompt.
func (ui *HuhUI) Ask(prompt string) (string, error) {
	var answer string
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(prompt).
				Value(&answer),
		),
	))
	return answer, err
}

// Print writes each line to out.
func (ui *HuhUI) Print(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(ui.out, line)
	}
}

var _ UI = (*HuhUI)(nil)
