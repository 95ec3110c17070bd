// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/logging"
	"github.com/conn-castle/smart-city/internal/metrics"
	"github.com/conn-castle/smart-city/internal/sample"
)

// WriteConfig writes content to config.toml under dir and returns its path.
// t is the active test; dir is the output directory.
func WriteConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// NewCity builds an independent facade whose readings replay values.
// Logging is discarded and metrics go to a fresh recorder.
func NewCity(t *testing.T, values ...int) *city.Facade {
	t.Helper()
	f, err := city.New(city.Options{
		Source:  sample.NewFixed(values...),
		Logger:  logging.Discard(),
		Metrics: metrics.NewRecorder(),
	})
	if err != nil {
		t.Fatalf("new city: %v", err)
	}
	return f
}

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool {
	return &v
}
