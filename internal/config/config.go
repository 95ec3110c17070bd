package config

// Config is the contents of config.toml.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Simulation SimulationConfig `toml:"simulation"`
	Lighting   LightingConfig   `toml:"lighting"`
	Output     OutputConfig     `toml:"output"`
}

// LogConfig controls structured logging on stderr.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SimulationConfig controls randomness. Seed 0 draws a seed from entropy.
type SimulationConfig struct {
	Seed uint64 `toml:"seed"`
}

// LightingConfig selects the street light family.
type LightingConfig struct {
	Family string `toml:"family"`
}

// OutputConfig controls how CLI results are rendered.
type OutputConfig struct {
	Format string `toml:"format"`
	// Color is a pointer so an omitted key keeps the default (enabled).
	Color *bool `toml:"color"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	color := true
	return &Config{
		Log:        LogConfig{Level: "warn", Format: "text"},
		Simulation: SimulationConfig{Seed: 0},
		Lighting:   LightingConfig{Family: "energy_efficient"},
		Output:     OutputConfig{Format: OutputText, Color: &color},
	}
}

// ColorEnabled reports whether colored output is enabled.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// applyDefaults fills keys the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Lighting.Family == "" {
		c.Lighting.Family = def.Lighting.Family
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Output.Color == nil {
		c.Output.Color = def.Output.Color
	}
}
