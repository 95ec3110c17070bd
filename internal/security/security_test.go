package security

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/smart-city/internal/guard"
	"github.com/conn-castle/smart-city/internal/sample"
)

func newTestManager(t *testing.T, src sample.Source) *Manager {
	t.Helper()
	m, err := NewManager(Options{
		Source: src,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return m
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, guard.RoleAdmin, RoleFor("run_patrol"))
	assert.Equal(t, guard.RoleManager, RoleFor("basic_query"))
	assert.Equal(t, guard.RoleManager, RoleFor(""))
	assert.Equal(t, guard.RoleManager, RoleFor("RUN_PATROL"))
}

func TestManager_RunPatrolPersists(t *testing.T) {
	m := newTestManager(t, sample.NewFixed(1))
	require.Equal(t, "Idle", m.Patrol())

	result := m.Operate(context.Background(), ActionRunPatrol)

	assert.Equal(t, "Security: Operation 'run_patrol' attempted with role 'admin'. Result: Security System: Initiating full city patrol. Status: Patrol in Progress", result)
	assert.Equal(t, "Patrol in Progress", m.Patrol())

	for i := 0; i < 3; i++ {
		status := m.Status()
		assert.Equal(t, "Monitoring", status.Manager)
		assert.Equal(t, "Patrol Status: Patrol in Progress. Incidents: 1", status.System)
	}
}

func TestManager_NonPatrolActionsAreLimited(t *testing.T) {
	m := newTestManager(t, sample.NewFixed(2))

	for _, action := range []string{"basic_query", "status", ""} {
		result := m.Operate(context.Background(), action)
		assert.Equal(t, "Security: Operation '"+action+"' attempted with role 'manager'. Result: Proxy: Access limited. Only 'admin' can initiate patrol. Current status: Patrol Status: Idle. Incidents: 2", result)
	}
	assert.Equal(t, "Idle", m.Patrol())
	assert.Equal(t, "Patrol Status: Idle. Incidents: 2", m.Status().System)
}

func TestManager_PatrolNeverReverts(t *testing.T) {
	m := newTestManager(t, sample.NewFixed(0))
	m.Operate(context.Background(), ActionRunPatrol)
	m.Operate(context.Background(), "basic_query")
	assert.Equal(t, "Patrol in Progress", m.Patrol())
}

func TestPatrolSystem_NonAdminRequest(t *testing.T) {
	p := NewPatrolSystem(sample.NewFixed(0))
	assert.Equal(t, "Security System: Accessing basic monitoring data for role 'manager'.", p.Request(guard.RoleManager))
	assert.Equal(t, "Idle", p.Patrol())
}

func TestPatrolSystem_IncidentRange(t *testing.T) {
	p := NewPatrolSystem(sample.New(7))
	for i := 0; i < 50; i++ {
		status := p.Status()
		assert.Regexp(t, `^Patrol Status: Idle\. Incidents: [0-2]$`, status)
	}
}

func TestPatrolAllowlist_ReturnsCopy(t *testing.T) {
	roles := PatrolAllowlist()
	assert.Equal(t, []guard.Role{guard.RoleAdmin}, roles)

	roles[0] = guard.RoleGuest
	assert.Equal(t, []guard.Role{guard.RoleAdmin}, PatrolAllowlist())
}
