package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/smart-city/internal/city"
	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/sample"
	"github.com/conn-castle/smart-city/internal/testutil"
)

// stubCLI isolates a test from the user's config file, the process-wide
// city and the terminal.
func stubCLI(t *testing.T) {
	t.Helper()
	origLoad := loadConfigFunc
	origCity := cityInstanceFunc
	origInteractive := isInteractiveFunc
	t.Cleanup(func() {
		loadConfigFunc = origLoad
		cityInstanceFunc = origCity
		isInteractiveFunc = origInteractive
	})
	loadConfigFunc = func(explicit string) (*config.Config, string, error) {
		if explicit != "" {
			return config.Load(explicit)
		}
		return config.Default(), "", nil
	}
	cityInstanceFunc = func(opts city.Options) (*city.Facade, error) {
		opts.Source = sample.NewFixed(0)
		return city.New(opts)
	}
	isInteractiveFunc = func() bool { return false }
}

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSubsystems(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "subsystems")
	require.NoError(t, err)
	assert.Equal(t, "transport\nlighting\nsecurity\nenergy\n", out)

	out, _, err = runCmd(t, "", "subsystems", "-o", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"transport", "lighting", "security", "energy"}, names)
}

func TestStatus_All(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "status")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[Transport]: {manager_status: Operational, components: [Light 1: Red, Light 2: Red, Light 3: Red]}", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[Lighting]: {manager_status: Operational, components: [LED Light 1: 50%"))
	assert.Equal(t, "[Security]: {manager_status: Monitoring, system_status: Patrol Status: Idle. Incidents: 0}", lines[2])
	assert.Equal(t, "[Energy]: {manager_status: Monitoring, current_consumption: 1000}", lines[3])
}

func TestStatus_OneAsJSON(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "status", "security", "--output", "JSON")
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "security", entries[0]["subsystem"])
}

func TestStatus_UnknownSubsystem(t *testing.T) {
	stubCLI(t)

	out, errOut, err := runCmd(t, "", "status", "parks")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, 1, silent.Code)
	assert.Empty(t, out)
	assert.Equal(t, "Error: Subsystem 'parks' not found.\n", errOut)
}

func TestOperate(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "operate", "transport", "optimize_flow")
	require.NoError(t, err)
	assert.Equal(t, "Transport: Optimized traffic flow. Changes: [TrafficLight 1 changed to Green, TrafficLight 2 changed to Green, TrafficLight 3 changed to Green]\n", out)
}

func TestOperate_SecurityDeniedForNonPatrol(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "operate", "security", "basic_query")
	require.NoError(t, err)
	assert.Equal(t, "Security: Operation 'basic_query' attempted with role 'manager'. Result: Proxy: Access limited. Only 'admin' can initiate patrol. Current status: Patrol Status: Idle. Incidents: 0\n", out)
}

func TestOperate_UnknownActionYAML(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "operate", "energy", "dance", "-o", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "subsystem: energy\naction: dance\nresult: "))
	assert.Contains(t, out, "Energy: No specific action taken.")
}

func TestOperate_UnknownSubsystem(t *testing.T) {
	stubCLI(t)

	_, errOut, err := runCmd(t, "", "operate", "parks", "mow")
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, "Error: Subsystem 'parks' not found.\n", errOut)
}

func TestOperate_RequiresTwoArgs(t *testing.T) {
	stubCLI(t)

	_, _, err := runCmd(t, "", "operate", "transport")
	require.Error(t, err)
}

func TestSimulate_Text(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "simulate")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "--- Running SmartCity Simulation Cycle ---", lines[0])
	assert.Equal(t, "--- Simulation Cycle Complete ---", lines[1])
	assert.Equal(t, "[Transport]: {manager_status: Operational, components: [Light 1: Green, Light 2: Green, Light 3: Green]}", lines[2])
	assert.Contains(t, lines[4], "Patrol in Progress")
}

func TestSimulate_DiffAndMetrics(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "simulate", "--diff", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "Status changes:\n--- before\n+++ after\n")
	assert.Contains(t, out, "-[Transport]: {manager_status: Operational, components: [Light 1: Red, Light 2: Red, Light 3: Red]}")
	assert.Contains(t, out, "+[Transport]: {manager_status: Operational, components: [Light 1: Green, Light 2: Green, Light 3: Green]}")
	assert.Contains(t, out, "Operation counters:\n")
	assert.Contains(t, out, "smartcity_simulations_total 1\n")
	assert.Contains(t, out, `smartcity_operations_total{subsystem="security"} 1`)
	assert.Contains(t, out, `smartcity_access_decisions_total{allowed="true",role="admin"} 1`)
}

func TestSimulate_JSONHasNoBanners(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "", "simulate", "-o", "json")
	require.NoError(t, err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 4)
}

func TestInvalidOutputFormat(t *testing.T) {
	stubCLI(t)

	_, _, err := runCmd(t, "", "status", "-o", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output format "csv"`)
}

func TestInvalidLogLevel(t *testing.T) {
	stubCLI(t)

	_, _, err := runCmd(t, "", "status", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure logging")
}

func TestDebugLogsGoToStderr(t *testing.T) {
	stubCLI(t)

	out, errOut, err := runCmd(t, "", "operate", "security", "run_patrol", "--log-level", "debug")
	require.NoError(t, err)
	assert.NotContains(t, out, "access decision")
	assert.Contains(t, errOut, "access decision")
	assert.Contains(t, errOut, "role=admin")
}

func TestConfigFileSelectsLightingFamily(t *testing.T) {
	stubCLI(t)
	path := testutil.WriteConfig(t, t.TempDir(), "[lighting]\nfamily = \"standard\"\n\n[output]\nformat = \"yaml\"\n")

	out, _, err := runCmd(t, "", "status", "lighting", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Halogen Light 1: 70%")
	assert.True(t, strings.HasPrefix(out, "- subsystem: lighting\n"))
}

func TestConfigFileInvalid(t *testing.T) {
	stubCLI(t)
	path := testutil.WriteConfig(t, t.TempDir(), "[lighting]\nfamily = \"neon\"\n")

	_, _, err := runCmd(t, "", "status", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.ErrorIs(t, err, config.ErrConfigValidation)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	stubCLI(t)
	path := testutil.WriteConfig(t, t.TempDir(), "[output]\nformat = \"yaml\"\n")

	out, _, err := runCmd(t, "", "subsystems", "--config", path, "--output", "text")
	require.NoError(t, err)
	assert.Equal(t, "transport\nlighting\nsecurity\nenergy\n", out)
}

func TestConsole_DefaultCommand(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "1\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "--- SmartCity System Console ---")
	assert.Contains(t, out, "--- All Subsystem Status ---")
	assert.Contains(t, out, "Exiting SmartCity System. Goodbye!")
}

func TestConsole_Subcommand(t *testing.T) {
	stubCLI(t)

	out, _, err := runCmd(t, "3\n1\noptimize_flow\n4\n", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "Operation Result:\nTransport: Optimized traffic flow.")
}

func TestRootRejectsArgs(t *testing.T) {
	stubCLI(t)

	_, _, err := runCmd(t, "", "parks")
	require.Error(t, err)
}
