package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/smart-city/internal/messages"
)

// EnvConfigPath overrides the default config location.
const EnvConfigPath = "SMARTCITY_CONFIG"

// Paths holds resolved paths for config files and directories.
type Paths struct {
	Dir        string
	ConfigPath string
}

// DefaultPaths returns the config paths under home.
func DefaultPaths(home string) Paths {
	dir := filepath.Join(home, ".smartcity")
	return Paths{
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config.toml"),
	}
}

var (
	homeDirFunc = homedir.Dir
	getenvFunc  = os.Getenv
)

// ResolvePath picks the config file to read: explicit (the --config flag)
// first, then SMARTCITY_CONFIG, then ~/.smartcity/config.toml. fromUser is
// true when the path came from the flag or the environment. A leading ~ is
// expanded.
func ResolvePath(explicit string) (path string, fromUser bool, err error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		candidate = strings.TrimSpace(getenvFunc(EnvConfigPath))
	}
	if candidate != "" {
		expanded, err := homedir.Expand(candidate)
		if err != nil {
			return "", true, fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
		}
		return expanded, true, nil
	}
	home, err := homeDirFunc()
	if err != nil {
		return "", false, fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
	}
	return DefaultPaths(home).ConfigPath, false, nil
}
