package lighting

import (
	"fmt"
	"strings"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
)

// Family names accepted by NewFamily and the lighting.family config key.
const (
	FamilyEnergyEfficient = "energy_efficient"
	FamilyStandard        = "standard"
)

// Family creates a matching set of lights and sensor.
// Each family numbers its lights from 1 in creation order.
type Family interface {
	Name() string
	CreateLight() component.Device
	CreateSensor() *MotionSensor
}

// NewFamily returns the family registered under name.
// An empty name selects the energy-efficient family.
func NewFamily(name string, src sample.Source) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FamilyEnergyEfficient:
		return NewEnergyEfficientFamily(src), nil
	case FamilyStandard:
		return NewStandardFamily(src), nil
	default:
		return nil, fmt.Errorf(messages.LightingFamilyUnknownFmt, name)
	}
}

// EnergyEfficientFamily produces LED lights.
type EnergyEfficientFamily struct {
	nextID int
	src    sample.Source
}

// NewEnergyEfficientFamily returns an LED family numbering lights from 1.
func NewEnergyEfficientFamily(src sample.Source) *EnergyEfficientFamily {
	return &EnergyEfficientFamily{nextID: 1, src: src}
}

// Name returns FamilyEnergyEfficient.
func (f *EnergyEfficientFamily) Name() string { return FamilyEnergyEfficient }

// CreateLight returns the next LED light.
func (f *EnergyEfficientFamily) CreateLight() component.Device {
	light := NewLEDLight(f.nextID, f.src)
	f.nextID++
	return light
}

// CreateSensor returns a motion sensor sharing the family's randomness.
func (f *EnergyEfficientFamily) CreateSensor() *MotionSensor {
	return &MotionSensor{src: f.src}
}

// StandardFamily produces halogen lights.
type StandardFamily struct {
	nextID int
	src    sample.Source
}

// NewStandardFamily returns a halogen family numbering lights from 1.
func NewStandardFamily(src sample.Source) *StandardFamily {
	return &StandardFamily{nextID: 1, src: src}
}

// Name returns FamilyStandard.
func (f *StandardFamily) Name() string { return FamilyStandard }

// CreateLight returns the next halogen light.
func (f *StandardFamily) CreateLight() component.Device {
	light := NewHalogenLight(f.nextID, f.src)
	f.nextID++
	return light
}

// CreateSensor returns a motion sensor sharing the family's randomness.
func (f *StandardFamily) CreateSensor() *MotionSensor {
	return &MotionSensor{src: f.src}
}
