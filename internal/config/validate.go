package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/smart-city/internal/messages"
)

var validLogLevels = map[string]struct{}{
	"debug":   {},
	"info":    {},
	"warn":    {},
	"warning": {},
	"error":   {},
}

var validLogFormats = map[string]struct{}{
	"text": {},
	"json": {},
}

var validLightingFamilies = map[string]struct{}{
	"energy_efficient": {},
	"standard":         {},
}

var validOutputFormats = map[string]struct{}{
	OutputText: {},
	OutputJSON: {},
	OutputYAML: {},
}

// Validate ensures every enumerated value is one the city understands.
// path names the source in error messages.
func (c *Config) Validate(path string) error {
	if !inSet(validLogLevels, c.Log.Level) {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level)
	}
	if !inSet(validLogFormats, c.Log.Format) {
		return fmt.Errorf(messages.ConfigLogFormatInvalidFmt, path, c.Log.Format)
	}
	if !inSet(validLightingFamilies, c.Lighting.Family) {
		return fmt.Errorf(messages.ConfigLightingFamilyInvalidFmt, path, c.Lighting.Family)
	}
	if !inSet(validOutputFormats, c.Output.Format) {
		return fmt.Errorf(messages.ConfigOutputFormatInvalidFmt, path, c.Output.Format)
	}
	return nil
}

// ValidOutputFormat reports whether format is text, json or yaml.
func ValidOutputFormat(format string) bool {
	return inSet(validOutputFormats, format)
}

func inSet(set map[string]struct{}, value string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
