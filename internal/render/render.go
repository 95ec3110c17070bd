// Package render formats city results for the console and the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/messages"
)

// Entry pairs a subsystem name with its status so structured output keeps
// dispatch order.
type Entry struct {
	Subsystem string           `json:"subsystem" yaml:"subsystem"`
	Status    component.Status `json:"status" yaml:"status"`
}

// OperationResult is the structured form of an operate call.
type OperationResult struct {
	Subsystem string `json:"subsystem" yaml:"subsystem"`
	Action    string `json:"action" yaml:"action"`
	Result    string `json:"result" yaml:"result"`
}

// Ordered returns statuses as entries following names. Names without a status are skipped.
func Ordered(names []string, statuses map[string]component.Status) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		status, ok := statuses[name]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Subsystem: name, Status: status})
	}
	return entries
}

// Title capitalizes a subsystem name for display.
func Title(name string) string {
	return cases.Title(language.English).String(name)
}

// StatusLine renders one entry the way the console prints it.
func StatusLine(entry Entry) string {
	return fmt.Sprintf(messages.ConsoleStatusLineFmt, Title(entry.Subsystem), entry.Status.String())
}

// StatusText renders entries as newline-terminated status lines.
func StatusText(entries []Entry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(StatusLine(entry))
		b.WriteString("\n")
	}
	return b.String()
}

// Statuses writes entries in the requested output format.
func Statuses(w io.Writer, format string, entries []Entry) error {
	switch normalizeFormat(format) {
	case config.OutputJSON:
		return writeJSON(w, entries)
	case config.OutputYAML:
		return writeYAML(w, entries)
	case config.OutputText:
		_, err := io.WriteString(w, StatusText(entries))
		return err
	default:
		return fmt.Errorf(messages.OutputFormatInvalidFmt, format)
	}
}

// Names writes subsystem names in the requested output format.
func Names(w io.Writer, format string, names []string) error {
	switch normalizeFormat(format) {
	case config.OutputJSON:
		return writeJSON(w, names)
	case config.OutputYAML:
		return writeYAML(w, names)
	case config.OutputText:
		for _, name := range names {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf(messages.OutputFormatInvalidFmt, format)
	}
}

// Operation writes the result of an operate call in the requested output format.
// Text output is the result exactly as the subsystem returned it.
func Operation(w io.Writer, format string, result OperationResult) error {
	switch normalizeFormat(format) {
	case config.OutputJSON:
		return writeJSON(w, result)
	case config.OutputYAML:
		return writeYAML(w, result)
	case config.OutputText:
		_, err := fmt.Fprintln(w, result.Result)
		return err
	default:
		return fmt.Errorf(messages.OutputFormatInvalidFmt, format)
	}
}

// Diff returns a unified diff of the text rendering of before and after.
// It returns an empty string when nothing changed.
func Diff(before []Entry, after []Entry) string {
	from := StatusText(before)
	to := StatusText(after)
	if from == to {
		return ""
	}
	return strings.TrimSpace(udiff.Unified(messages.SimulateDiffBefore, messages.SimulateDiffAfter, from, to))
}

// Heading writes a bold cyan heading line, or plain text when enabled is false.
func Heading(w io.Writer, text string, enabled bool) {
	c := color.New(color.FgCyan, color.Bold)
	if !enabled {
		c.DisableColor()
	}
	_, _ = c.Fprintln(w, text)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func normalizeFormat(format string) string {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		return config.OutputText
	}
	return normalized
}
