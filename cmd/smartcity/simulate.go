package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/render"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var showDiff, showMetrics bool
	cmd := &cobra.Command{
		Use:   messages.SimulateUse,
		Short: messages.SimulateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			text := s.output == config.OutputText

			var before []render.Entry
			if showDiff {
				before = orderedStatuses(s, s.city.AllStatus())
			}
			if text {
				render.Heading(out, messages.SimulationStartBanner, s.color)
			}
			after := orderedStatuses(s, s.city.RunSimulation(cmd.Context()))
			if text {
				render.Heading(out, messages.SimulationCompleteBanner, s.color)
			}
			if err := render.Statuses(out, s.output, after); err != nil {
				return err
			}

			if showDiff {
				render.Heading(out, messages.SimulateDiffHeader, s.color)
				diff := render.Diff(before, after)
				if diff == "" {
					diff = messages.SimulateDiffNone
				}
				_, _ = fmt.Fprintln(out, diff)
			}
			if showMetrics {
				render.Heading(out, messages.SimulateMetricsHeader, s.color)
				if err := s.city.Metrics().WriteText(out); err != nil {
					return fmt.Errorf(messages.WriteMetricsErrFmt, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.FlagDiff)
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, messages.FlagMetrics)
	return cmd
}
