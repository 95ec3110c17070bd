// Package console runs the interactive SmartCity menu on top of the city facade.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/render"
)

// City is the part of the facade the console drives.
type City interface {
	SubsystemNames() []string
	AllStatus() map[string]component.Status
	RunSimulation(ctx context.Context) map[string]component.Status
	OperateSubsystem(ctx context.Context, name string, action string) (string, error)
}

// Main menu answers.
const (
	choiceAllStatus = "1"
	choiceSimulate  = "2"
	choiceOperate   = "3"
	choiceExit      = "4"
)

var mainMenu = Menu{
	Title: messages.ConsoleMenuTitle,
	Options: []string{
		messages.ConsoleMenuAllStatus,
		messages.ConsoleMenuSimulate,
		messages.ConsoleMenuOperate,
		messages.ConsoleMenuExit,
	},
	Footer: messages.ConsoleMenuFooter,
	Prompt: messages.ConsoleChoicePrompt,
}

// Console is the interactive menu loop.
type Console struct {
	city City
	ui   UI
}

// New returns a console driving c through ui.
func New(c City, ui UI) *Console {
	return &Console{city: c, ui: ui}
}

// Run shows the main menu until the user exits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := c.ui.Choose(mainMenu)
		if err != nil {
			return finish(err)
		}
		switch strings.TrimSpace(choice) {
		case choiceAllStatus:
			c.printStatuses(messages.ConsoleAllStatusTitle, messages.ConsoleAllStatusRule, c.city.AllStatus())
		case choiceSimulate:
			c.ui.Print("", messages.SimulationStartBanner)
			statuses := c.city.RunSimulation(ctx)
			c.ui.Print(messages.SimulationCompleteBanner)
			c.printStatuses(messages.ConsoleFinalTitle, messages.ConsoleFinalRule, statuses)
		case choiceOperate:
			if err := c.operate(ctx); err != nil {
				return finish(err)
			}
		case choiceExit:
			c.ui.Print(messages.ConsoleGoodbye)
			return nil
		default:
			c.ui.Print(messages.ConsoleInvalidChoice)
		}
	}
}

// finish treats end of input and an aborted prompt as a normal exit.
func finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, ErrAborted) {
		return nil
	}
	return fmt.Errorf(messages.ConsoleReadInputErrFmt, err)
}

func (c *Console) printStatuses(title string, rule string, statuses map[string]component.Status) {
	c.ui.Print("", title)
	for _, entry := range render.Ordered(c.city.SubsystemNames(), statuses) {
		c.ui.Print(render.StatusLine(entry))
	}
	c.ui.Print(rule)
}

// operate asks for a subsystem number and an action and prints the result.
// Invalid selections are reported and return to the main menu.
func (c *Console) operate(ctx context.Context) error {
	names := c.city.SubsystemNames()
	titles := make([]string, len(names))
	for i, name := range names {
		titles[i] = render.Title(name)
	}
	answer, err := c.ui.Choose(Menu{
		Title:   messages.ConsoleSubsystemsTitle,
		Options: titles,
		Prompt:  messages.ConsoleSubsystemPrompt,
	})
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		c.ui.Print(messages.ConsoleInvalidNumber)
		return nil
	}
	index := number - 1
	if index < 0 || index >= len(names) {
		c.ui.Print(messages.ConsoleInvalidSubsystem)
		return nil
	}
	name := names[index]

	raw, err := c.ui.Ask(fmt.Sprintf(messages.ConsoleActionPromptFmt, titles[index]))
	if err != nil {
		return err
	}
	result, err := c.city.OperateSubsystem(ctx, name, NormalizeAction(raw))
	if err != nil {
		var notFound *city.SubsystemNotFoundError
		if errors.As(err, &notFound) {
			c.ui.Print(notFound.UserMessage())
		} else {
			c.ui.Print(err.Error())
		}
		return nil
	}
	c.ui.Print("", messages.ConsoleOperationResult, result)
	return nil
}

// NormalizeAction folds compatibility characters (full-width letters, for
// example) with NFKC and trims surrounding whitespace.
func NormalizeAction(action string) string {
	return strings.TrimSpace(norm.NFKC.String(action))
}
