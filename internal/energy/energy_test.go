package energy

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/smart-city/internal/metrics"
	"github.com/conn-castle/smart-city/internal/sample"
)

func TestManager_ReportConsumption(t *testing.T) {
	recorder := metrics.NewRecorder()
	m := NewManager(sample.NewFixed(0, 2000), recorder)

	result := m.Operate(context.Background(), ActionReportConsumption)

	assert.Equal(t, strings.Join([]string{
		"Energy: Generated Consumption Report:",
		"--- Energy Consumption Report ---",
		"Date: 2025-12-01",
		"Total Consumption (kWh): 3000",
		"Lighting Usage: 900 kWh",
		"Transport Usage: 1200 kWh",
		"Security Usage: 300 kWh",
		"Other Usage: 600 kWh",
		"--- End of Report ---",
	}, "\n"), result)

	expected := `
# HELP smartcity_energy_reports_total Energy consumption reports assembled.
# TYPE smartcity_energy_reports_total counter
smartcity_energy_reports_total 1
`
	require.NoError(t, testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected), "smartcity_energy_reports_total"))
}

func TestManager_ConsecutiveReportsDoNotLeak(t *testing.T) {
	m := NewManager(sample.New(11), nil)
	for i := 0; i < 3; i++ {
		result := m.Operate(context.Background(), ActionReportConsumption)
		assert.Equal(t, 1, strings.Count(result, "--- Energy Consumption Report ---"))
		assert.Equal(t, 9, len(strings.Split(result, "\n")))
	}
}

func TestManager_StatusSamplesIndependently(t *testing.T) {
	m := NewManager(sample.NewFixed(0, 0, 4000), nil)
	m.Operate(context.Background(), ActionReportConsumption)

	status := m.Status()
	assert.Equal(t, "Monitoring", status.Manager)
	require.NotNil(t, status.CurrentConsumption)
	assert.Equal(t, 5000, *status.CurrentConsumption)
}

func TestManager_UnknownActionIsNoop(t *testing.T) {
	src := sample.NewFixed(0)
	m := NewManager(src, nil)

	assert.Equal(t, "Energy: No specific action taken.", m.Operate(context.Background(), "run_patrol"))
	assert.Equal(t, 0, src.Draws())
}
