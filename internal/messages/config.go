package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %v"
	ConfigResolveHomeErrFmt   = "resolve home dir: %w"

	ConfigLogLevelInvalidFmt       = "%s: log.level must be one of debug, info, warn, error (got %q)"
	ConfigLogFormatInvalidFmt      = "%s: log.format must be text or json (got %q)"
	ConfigLightingFamilyInvalidFmt = "%s: lighting.family must be energy_efficient or standard (got %q)"
	ConfigOutputFormatInvalidFmt   = "%s: output.format must be one of text, json, yaml (got %q)"

	// LogLevelInvalidFmt formats an unknown log level from a flag or config.
	LogLevelInvalidFmt  = "invalid log level %q (supported: debug, info, warn, error)"
	LogFormatInvalidFmt = "invalid log format %q (supported: text, json)"
)
