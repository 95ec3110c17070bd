// Package transport manages the city's traffic lights.
package transport

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/messages"
)

// ActionOptimizeFlow advances every light one phase.
const ActionOptimizeFlow = "optimize_flow"

const (
	lightCount   = 3
	firstLightID = 1
)

// Manager owns the city's traffic lights.
type Manager struct {
	mu     sync.Mutex
	lights []*TrafficLight
	status string
}

// NewManager creates a manager with three lights numbered from 1.
func NewManager() *Manager {
	factory := NewLightFactory(firstLightID)
	lights := make([]*TrafficLight, 0, lightCount)
	for range lightCount {
		lights = append(lights, factory.Create())
	}
	return &Manager{
		lights: lights,
		status: messages.TransportManagerStatus,
	}
}

// Operate runs action against the lights. Only optimize_flow has an effect.
func (m *Manager) Operate(_ context.Context, action string) string {
	if action != ActionOptimizeFlow {
		return messages.TransportNoAction
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	changes := component.OperateAll(m.lights)
	return fmt.Sprintf(messages.TransportOptimizedFmt, strings.Join(changes, ", "))
}

// Status reports the manager label and each light's phase.
func (m *Manager) Status() component.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return component.Status{
		Manager:    m.status,
		Components: component.Statuses(m.lights),
	}
}

var _ component.Subsystem = (*Manager)(nil)
