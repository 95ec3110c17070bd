package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/smart-city/internal/messages"
)

// ErrAborted is returned by a UI when the user leaves a prompt without answering.
var ErrAborted = errors.New("console aborted")

// Menu is a numbered list of options. Answers are the 1-based option number
// as text; the console validates them.
type Menu struct {
	Title   string
	Options []string
	Footer  string
	Prompt  string
}

// UI defines the interaction methods the console needs.
type UI interface {
	// Choose presents menu and returns the raw answer.
	Choose(menu Menu) (string, error)
	// Ask prompts for one line of free text.
	Ask(prompt string) (string, error)
	// Print shows lines of output.
	Print(lines ...string)
}

// LineUI implements UI over a plain reader and writer.
// It is used when stdin is not a terminal and in tests.
type LineUI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineUI reads answers from in and writes prompts to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{in: bufio.NewReader(in), out: out}
}

// Choose prints the title, numbered options and footer, then reads one line.
func (ui *LineUI) Choose(menu Menu) (string, error) {
	ui.Print("", menu.Title)
	for i, option := range menu.Options {
		ui.Print(fmt.Sprintf(messages.ConsoleMenuOptionFmt, i+1, option))
	}
	if menu.Footer != "" {
		ui.Print(menu.Footer)
	}
	return ui.Ask(menu.Prompt)
}

// Ask writes prompt without a newline and reads one line. The trailing
// newline is removed. io.EOF is returned only when no input remains.
func (ui *LineUI) Ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(ui.out, prompt)
	line, err := ui.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes each line followed by a newline.
func (ui *LineUI) Print(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(ui.out, line)
	}
}

var _ UI = (*LineUI)(nil)
