package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/console"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/render"
)

func newSubsystemsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SubsystemsUse,
		Short: messages.SubsystemsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return render.Names(cmd.OutOrStdout(), s.output, s.city.SubsystemNames())
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			var entries []render.Entry
			if len(args) == 0 {
				entries = render.Ordered(s.city.SubsystemNames(), s.city.AllStatus())
			} else {
				status, err := s.city.SubsystemStatus(args[0])
				if err != nil {
					return reportNotFound(cmd, err)
				}
				entries = []render.Entry{{Subsystem: args[0], Status: status}}
			}
			return render.Statuses(cmd.OutOrStdout(), s.output, entries)
		},
	}
}

func newOperateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.OperateUse,
		Short: messages.OperateShort,
		Long:  messages.OperateLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			name := args[0]
			action := console.NormalizeAction(args[1])
			result, err := s.city.OperateSubsystem(cmd.Context(), name, action)
			if err != nil {
				return reportNotFound(cmd, err)
			}
			return render.Operation(cmd.OutOrStdout(), s.output, render.OperationResult{
				Subsystem: name,
				Action:    action,
				Result:    result,
			})
		},
	}
}

func newConsoleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConsoleUse,
		Short: messages.ConsoleShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}
}

// runConsole starts the interactive menu: huh forms on a terminal, plain
// line prompts otherwise.
func runConsole(cmd *cobra.Command, opts *rootOptions) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	var ui console.UI
	if isInteractiveFunc() {
		ui = console.NewHuhUI(cmd.OutOrStdout())
	} else {
		ui = console.NewLineUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return console.New(s.city, ui).Run(cmd.Context())
}

// reportNotFound prints the user-facing not-found line and exits 1 without
// repeating the error. Other errors are returned unchanged.
func reportNotFound(cmd *cobra.Command, err error) error {
	var notFound *city.SubsystemNotFoundError
	if !errors.As(err, &notFound) {
		return err
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), notFound.UserMessage())
	return &SilentExitError{Code: 1}
}

// orderedStatuses renders a status map in dispatch order.
func orderedStatuses(s *session, statuses map[string]component.Status) []render.Entry {
	return render.Ordered(s.city.SubsystemNames(), statuses)
}
