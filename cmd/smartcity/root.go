package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/logging"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
	"github.com/conn-castle/smart-city/internal/terminal"
)

const (
	flagConfig   = "config"
	flagOutput   = "output"
	flagNoColor  = "no-color"
	flagLogLevel = "log-level"
	flagSeed     = "seed"
)

var (
	loadConfigFunc    = config.Load
	cityInstanceFunc  = city.Instance
	isInteractiveFunc = terminal.IsInteractive
)

// rootOptions holds the persistent flag values.
type rootOptions struct {
	configPath string
	output     string
	noColor    bool
	logLevel   string
	seed       uint64
}

// session is the resolved configuration and city for one command run.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	city   *city.Facade
	output string
	color  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, flagConfig, "", messages.FlagConfig)
	flags.StringVarP(&opts.output, flagOutput, "o", config.OutputText, messages.FlagOutput)
	flags.BoolVar(&opts.noColor, flagNoColor, false, messages.FlagNoColor)
	flags.StringVar(&opts.logLevel, flagLogLevel, logging.DefaultLevel, messages.FlagLogLevel)
	flags.Uint64Var(&opts.seed, flagSeed, 0, messages.FlagSeed)

	cmd.AddCommand(
		newSubsystemsCmd(opts),
		newStatusCmd(opts),
		newOperateCmd(opts),
		newSimulateCmd(opts),
		newConsoleCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// resolveConfig loads the config file and applies flags the user set explicitly.
func (o *rootOptions) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := loadConfigFunc(o.configPath)
	if err != nil {
		return nil, fmt.Errorf(messages.LoadConfigErrFmt, err)
	}
	flags := cmd.Flags()
	if flags.Changed(flagOutput) {
		cfg.Output.Format = o.output
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed(flagSeed) {
		cfg.Simulation.Seed = o.seed
	}
	if o.noColor {
		disabled := false
		cfg.Output.Color = &disabled
	}
	if !config.ValidOutputFormat(cfg.Output.Format) {
		return nil, fmt.Errorf(messages.OutputFormatInvalidFmt, cfg.Output.Format)
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	return cfg, nil
}

// open resolves config, logging and the process-wide city for a command.
func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf(messages.BuildLoggerErrFmt, err)
	}
	facade, err := cityInstanceFunc(city.Options{
		Source:         sample.New(cfg.Simulation.Seed),
		Logger:         logger,
		LightingFamily: cfg.Lighting.Family,
	})
	if err != nil {
		return nil, fmt.Errorf(messages.StartCityErrFmt, err)
	}
	return &session{
		cfg:    cfg,
		logger: logger,
		city:   facade,
		output: cfg.Output.Format,
		color:  useColor(cfg, cmd.OutOrStdout()),
	}, nil
}

// useColor reports whether colored output should go to out.
func useColor(cfg *config.Config, out io.Writer) bool {
	return cfg.ColorEnabled() && terminal.IsTerminalWriter(out)
}
