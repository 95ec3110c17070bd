package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/doctor"
	"github.com/conn-castle/smart-city/internal/logging"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
)

var (
	checkConfig = doctor.CheckConfig
	checkPolicy = doctor.CheckPolicy
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, messages.DoctorHealthCheck)

			// 1. Config. Later checks use the lenient config when validation failed.
			results, cfg := checkConfig(opts.configPath)
			if cfg == nil {
				cfg = config.Default()
			}
			if opts.noColor {
				disabled := false
				cfg.Output.Color = &disabled
			}

			// 2. Access policy.
			results = append(results, checkPolicy()...)

			// 3. Subsystems, on a private city so the process-wide one is untouched.
			facade, err := city.New(city.Options{
				Source:         sample.New(cfg.Simulation.Seed),
				Logger:         logging.Discard(),
				LightingFamily: cfg.Lighting.Family,
			})
			if err != nil {
				results = append(results, doctor.CityFailure(err))
			} else {
				results = append(results, doctor.CheckSubsystems(facade)...)
			}

			enabled := useColor(cfg, out)
			for _, r := range results {
				printResult(out, r, enabled)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, colorize(color.FgRed, enabled).Sprint(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, colorize(color.FgGreen, enabled).Sprint(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func colorize(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if !enabled {
		c.DisableColor()
	}
	return c
}

func printResult(out io.Writer, r doctor.Result, enabled bool) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = colorize(color.FgGreen, enabled).Sprint(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = colorize(color.FgYellow, enabled).Sprint(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = colorize(color.FgRed, enabled).Sprint(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		switch {
		case i == 0:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
		case line == "":
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
		default:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
		}
	}
}
