// Package energy reports the city's energy consumption.
package energy

import (
	"context"
	"fmt"
	"sync"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/metrics"
	"github.com/conn-castle/smart-city/internal/report"
	"github.com/conn-castle/smart-city/internal/sample"
)

// ActionReportConsumption assembles a consumption report.
const ActionReportConsumption = "report_consumption"

// Manager owns the energy report assembler.
type Manager struct {
	mu        sync.Mutex
	assembler *report.EnergyAssembler
	src       sample.Source
	metrics   *metrics.Recorder
	status    string
}

// NewManager returns a manager drawing readings from src. recorder may be nil.
func NewManager(src sample.Source, recorder *metrics.Recorder) *Manager {
	return &Manager{
		assembler: report.NewEnergyAssembler(src),
		src:       src,
		metrics:   recorder,
		status:    messages.EnergyManagerStatus,
	}
}

// Operate runs action. Only report_consumption has an effect.
func (m *Manager) Operate(_ context.Context, action string) string {
	if action != ActionReportConsumption {
		return messages.EnergyNoAction
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.assembler.Build()
	m.metrics.Report()
	return fmt.Sprintf(messages.EnergyReportFmt, doc.Show())
}

// Status reports a fresh consumption sample, unrelated to any earlier report.
func (m *Manager) Status() component.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	consumption := sample.Between(m.src, report.MinConsumption, report.MaxConsumption)
	return component.Status{
		Manager:            m.status,
		CurrentConsumption: &consumption,
	}
}

var _ component.Subsystem = (*Manager)(nil)
