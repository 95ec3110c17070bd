package transport

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrafficLight_CycleFromRed(t *testing.T) {
	light := NewTrafficLight(10)
	require.Equal(t, Red, light.Phase())

	assert.Equal(t, "TrafficLight 10 changed to Green", light.Operate())
	assert.Equal(t, Green, light.Phase())
	assert.Equal(t, "TrafficLight 10 changed to Yellow", light.Operate())
	assert.Equal(t, Yellow, light.Phase())
	assert.Equal(t, "TrafficLight 10 changed to Red", light.Operate())
	assert.Equal(t, Red, light.Phase())
	assert.Equal(t, "Light 10: Red", light.Status())
}

func TestPhase_NextUnknownRestartsAtRed(t *testing.T) {
	assert.Equal(t, Red, Phase("Blue").Next())
}

func TestLightFactory_SequentialIDs(t *testing.T) {
	factory := NewLightFactory(10)
	first := factory.Create()
	second := factory.Create()

	assert.Equal(t, 10, first.ID())
	assert.Equal(t, 11, second.ID())
	assert.Equal(t, Red, first.Phase())
}

func TestManager_InitialStatus(t *testing.T) {
	m := NewManager()
	status := m.Status()

	assert.Equal(t, "Operational", status.Manager)
	assert.Equal(t, []string{"Light 1: Red", "Light 2: Red", "Light 3: Red"}, status.Components)
	assert.Nil(t, status.SensorActive)
}

func TestManager_LightSetFixedAtConstruction(t *testing.T) {
	m := NewManager()
	for range 3 {
		m.Operate(context.Background(), ActionOptimizeFlow)
	}

	status := m.Status()
	require.Len(t, status.Components, 3)
	assert.Equal(t, "Light 1: Red", status.Components[0])
	assert.Equal(t, "Light 3: Red", status.Components[2])
}

func TestManager_OptimizeFlow(t *testing.T) {
	m := NewManager()
	result := m.Operate(context.Background(), ActionOptimizeFlow)

	assert.Equal(t, "Transport: Optimized traffic flow. Changes: [TrafficLight 1 changed to Green, TrafficLight 2 changed to Green, TrafficLight 3 changed to Green]", result)
	assert.Equal(t, []string{"Light 1: Green", "Light 2: Green", "Light 3: Green"}, m.Status().Components)
}

func TestManager_UnknownActionIsNoop(t *testing.T) {
	m := NewManager()
	before := m.Status()

	for _, action := range []string{"", "adjust_brightness", "OPTIMIZE_FLOW"} {
		assert.Equal(t, "Transport: No specific action taken.", m.Operate(context.Background(), action))
	}
	assert.Equal(t, before, m.Status())
}
