// Package lighting manages the city's street lights and motion sensor.
package lighting

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/messages"
)

// ActionAdjustBrightness re-samples every light's brightness.
const ActionAdjustBrightness = "adjust_brightness"

const lightCount = 5

// Manager owns five street lights and one shared motion sensor.
type Manager struct {
	mu     sync.Mutex
	family Family
	lights []component.Device
	sensor *MotionSensor
	status string
}

// NewManager builds the lights and sensor from a single family.
func NewManager(family Family) *Manager {
	lights := make([]component.Device, 0, lightCount)
	for range lightCount {
		lights = append(lights, family.CreateLight())
	}
	return &Manager{
		family: family,
		lights: lights,
		sensor: family.CreateSensor(),
		status: messages.LightingManagerStatus,
	}
}

// Family returns the name of the family the lights were built from.
func (m *Manager) Family() string {
	return m.family.Name()
}

// Operate runs action against the lights. Only adjust_brightness has an effect.
func (m *Manager) Operate(_ context.Context, action string) string {
	if action != ActionAdjustBrightness {
		return messages.LightingNoAction
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	changes := component.OperateAll(m.lights)
	return fmt.Sprintf(messages.LightingAdjustedFmt, strings.Join(changes, ", "))
}

// Status reports each light and one fresh motion sensor reading.
func (m *Manager) Status() component.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := m.sensor.Detect()
	return component.Status{
		Manager:      m.status,
		Components:   component.Statuses(m.lights),
		SensorActive: &active,
	}
}

var _ component.Subsystem = (*Manager)(nil)
