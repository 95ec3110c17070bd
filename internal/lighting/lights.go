package lighting

import (
	"fmt"

	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
)

// Brightness bounds and defaults, in percent.
const (
	ledDefaultBrightness     = 50
	ledMinBrightness         = 30
	halogenDefaultBrightness = 70
	halogenMinBrightness     = 50
	maxBrightness            = 100
)

// LEDLight is an energy-efficient street light.
type LEDLight struct {
	id         int
	brightness int
	src        sample.Source
}

// NewLEDLight returns an LED light at its default brightness.
func NewLEDLight(id int, src sample.Source) *LEDLight {
	return &LEDLight{id: id, brightness: ledDefaultBrightness, src: src}
}

// ID returns the light's identifier.
func (l *LEDLight) ID() int { return l.id }

// Brightness returns the current brightness in percent.
func (l *LEDLight) Brightness() int { return l.brightness }

// Operate re-samples brightness uniformly from [30, 100].
func (l *LEDLight) Operate() string {
	l.brightness = sample.Between(l.src, ledMinBrightness, maxBrightness)
	return fmt.Sprintf(messages.LEDLightAdjustedFmt, l.id, l.brightness)
}

// Status describes the current brightness.
func (l *LEDLight) Status() string {
	return fmt.Sprintf(messages.LEDLightStatusFmt, l.id, l.brightness)
}

// HalogenLight is a conventional street light.
type HalogenLight struct {
	id         int
	brightness int
	src        sample.Source
}

// NewHalogenLight returns a halogen light at its default brightness.
func NewHalogenLight(id int, src sample.Source) *HalogenLight {
	return &HalogenLight{id: id, brightness: halogenDefaultBrightness, src: src}
}

// ID returns the light's identifier.
func (l *HalogenLight) ID() int { return l.id }

// Brightness returns the current brightness in percent.
func (l *HalogenLight) Brightness() int { return l.brightness }

// Operate re-samples brightness uniformly from [50, 100].
func (l *HalogenLight) Operate() string {
	l.brightness = sample.Between(l.src, halogenMinBrightness, maxBrightness)
	return fmt.Sprintf(messages.HalogenLightAdjustedFmt, l.id, l.brightness)
}

// Status describes the current brightness.
func (l *HalogenLight) Status() string {
	return fmt.Sprintf(messages.HalogenLightStatusFmt, l.id, l.brightness)
}

// MotionSensor reports whether movement is detected near the lights.
type MotionSensor struct {
	src sample.Source
}

// Detect returns a fresh, independent reading.
func (s *MotionSensor) Detect() bool {
	return sample.Bool(s.src)
}
