package transport

import (
	"fmt"

	"github.com/conn-castle/smart-city/internal/messages"
)

// Phase is a traffic light signal.
type Phase string

// Traffic light phases in cycle order.
const (
	Red    Phase = "Red"
	Green  Phase = "Green"
	Yellow Phase = "Yellow"
)

// Next returns the phase that follows p in the Red, Green, Yellow cycle.
// An unrecognized phase restarts the cycle at Red.
func (p Phase) Next() Phase {
	switch p {
	case Red:
		return Green
	case Green:
		return Yellow
	default:
		return Red
	}
}

// TrafficLight is a single signal at an intersection. New lights show Red.
type TrafficLight struct {
	id    int
	phase Phase
}

// NewTrafficLight returns a light showing Red.
func NewTrafficLight(id int) *TrafficLight {
	return &TrafficLight{id: id, phase: Red}
}

// ID returns the light's identifier.
func (l *TrafficLight) ID() int { return l.id }

// Phase returns the phase the light is currently showing.
func (l *TrafficLight) Phase() Phase { return l.phase }

// Operate advances the light one step through its cycle.
func (l *TrafficLight) Operate() string {
	l.phase = l.phase.Next()
	return fmt.Sprintf(messages.TrafficLightChangedFmt, l.id, l.phase)
}

// Status describes the light's current phase.
func (l *TrafficLight) Status() string {
	return fmt.Sprintf(messages.TrafficLightStatusFmt, l.id, l.phase)
}

// LightFactory creates traffic lights with sequential ids.
type LightFactory struct {
	nextID int
}

// NewLightFactory returns a factory whose first light gets nextID.
func NewLightFactory(nextID int) *LightFactory {
	return &LightFactory{nextID: nextID}
}

// Create returns a new light and advances the id counter.
func (f *LightFactory) Create() *TrafficLight {
	light := NewTrafficLight(f.nextID)
	f.nextID++
	return light
}
