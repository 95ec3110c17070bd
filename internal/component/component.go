// Package component defines the contract shared by every city device and
// every subsystem manager.
package component

import (
	"context"
	"fmt"
	"strings"
)

// Device is a single piece of city hardware owned by a subsystem manager.
type Device interface {
	// ID is unique within the owning manager and increases in creation order.
	ID() int
	// Operate performs the device's one action and describes the change.
	Operate() string
	// Status describes the device's current state on one line.
	Status() string
}

// Subsystem is a manager for one smart-city domain.
// Unrecognized actions are no-ops that return a fixed text; they never fail.
type Subsystem interface {
	Operate(ctx context.Context, action string) string
	Status() Status
}

// Status is the structured status reported by a subsystem manager.
// Only the fields a manager populates are rendered.
type Status struct {
	Manager            string   `json:"manager_status" yaml:"manager_status"`
	Components         []string `json:"components,omitempty" yaml:"components,omitempty"`
	SensorActive       *bool    `json:"sensor_active,omitempty" yaml:"sensor_active,omitempty"`
	System             string   `json:"system_status,omitempty" yaml:"system_status,omitempty"`
	CurrentConsumption *int     `json:"current_consumption,omitempty" yaml:"current_consumption,omitempty"`
}

// String renders the status as a single key/value line.
func (s Status) String() string {
	parts := []string{"manager_status: " + s.Manager}
	if len(s.Components) > 0 {
		parts = append(parts, "components: ["+strings.Join(s.Components, ", ")+"]")
	}
	if s.SensorActive != nil {
		parts = append(parts, fmt.Sprintf("sensor_active: %t", *s.SensorActive))
	}
	if s.System != "" {
		parts = append(parts, "system_status: "+s.System)
	}
	if s.CurrentConsumption != nil {
		parts = append(parts, fmt.Sprintf("current_consumption: %d", *s.CurrentConsumption))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Statuses collects the one-line status of each device in order.
func Statuses[D Device](devices []D) []string {
	out := make([]string, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.Status())
	}
	return out
}

// OperateAll operates each device in order and collects the change descriptions.
func OperateAll[D Device](devices []D) []string {
	out := make([]string, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.Operate())
	}
	return out
}
