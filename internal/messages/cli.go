package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "smartcity"
	// RootShort is the short description for the root command.
	RootShort       = "SmartCity management console"
	RootLong        = "Inspect and operate the transport, lighting, security and energy subsystems of a simulated smart city.\nWith no command, starts the interactive console."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// FlagConfig describes the --config flag.
	FlagConfig   = "Path to config.toml (default ~/.smartcity/config.toml, or $SMARTCITY_CONFIG)"
	FlagOutput   = "Output format: text, json or yaml"
	FlagNoColor  = "Disable colored output"
	FlagLogLevel = "Log level: debug, info, warn or error"
	FlagSeed     = "Seed for simulated sensor readings (0 draws from entropy)"
	FlagDiff     = "Print a unified diff of subsystem status before and after the cycle"
	FlagMetrics  = "Print operation counters in Prometheus text format after the cycle"

	// OutputFormatInvalidFmt formats an unsupported --output value.
	OutputFormatInvalidFmt = "invalid output format %q (supported: text, json, yaml)"
	LoadConfigErrFmt       = "load config: %w"
	BuildLoggerErrFmt      = "configure logging: %w"
	StartCityErrFmt        = "start city: %w"

	// SubsystemsUse is the subsystems command name.
	SubsystemsUse   = "subsystems"
	SubsystemsShort = "List subsystem names in dispatch order"

	StatusUse   = "status [subsystem]"
	StatusShort = "Show the status of every subsystem, or of one"

	OperateUse   = "operate <subsystem> <action>"
	OperateShort = "Perform an action on a subsystem"
	OperateLong  = "Perform an action on a subsystem.\n\nKnown actions: transport optimize_flow, lighting adjust_brightness, security run_patrol, energy report_consumption.\nUnknown actions are accepted and leave the subsystem unchanged."

	SimulateUse   = "simulate"
	SimulateShort = "Run one simulation cycle across every subsystem"

	ConsoleUse   = "console"
	ConsoleShort = "Start the interactive console"

	// SimulateDiffHeader precedes the before/after status diff.
	SimulateDiffHeader    = "Status changes:"
	SimulateDiffNone      = "No status changes."
	SimulateMetricsHeader = "Operation counters:"
	SimulateDiffBefore    = "before"
	SimulateDiffAfter     = "after"
	WriteMetricsErrFmt    = "write metrics: %w"
)
