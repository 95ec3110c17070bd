// Package security manages the city's patrol capability behind an access guard.
package security

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/guard"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/metrics"
	"github.com/conn-castle/smart-city/internal/sample"
)

// ActionRunPatrol is the only action performed with the admin role.
const ActionRunPatrol = "run_patrol"

const patrolResourceID = "patrol"

// patrolAllowlist is fixed for the process lifetime.
var patrolAllowlist = []guard.Role{guard.RoleAdmin}

// Options configures a Manager.
type Options struct {
	Source  sample.Source
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Manager owns the patrol system and the guard in front of it.
type Manager struct {
	mu     sync.Mutex
	system *PatrolSystem
	guard  *guard.Guard
	status string
}

// NewManager wraps a fresh patrol system with an admin-only guard.
func NewManager(opts Options) (*Manager, error) {
	system := NewPatrolSystem(opts.Source)
	g, err := guard.New(system, guard.Config{
		ResourceID:   patrolResourceID,
		AllowedRoles: patrolAllowlist,
		Logger:       opts.Logger,
		Metrics:      opts.Metrics,
		DeniedFmt:    messages.PatrolAccessLimitedFmt,
	})
	if err != nil {
		return nil, err
	}
	return &Manager{
		system: system,
		guard:  g,
		status: messages.SecurityManagerStatus,
	}, nil
}

// PatrolAllowlist returns the roles allowed to start a patrol.
func PatrolAllowlist() []guard.Role {
	return append([]guard.Role(nil), patrolAllowlist...)
}

// RoleFor returns the role an action is performed with: admin for run_patrol,
// manager for everything else. The manager role is not on the patrol
// allowlist, so every other action is answered with limited access.
func RoleFor(action string) guard.Role {
	if action == ActionRunPatrol {
		return guard.RoleAdmin
	}
	return guard.RoleManager
}

// Operate sends action through the guard with the role chosen by RoleFor.
func (m *Manager) Operate(ctx context.Context, action string) string {
	role := RoleFor(action)
	m.mu.Lock()
	defer m.mu.Unlock()
	result := m.guard.Request(ctx, role)
	return fmt.Sprintf(messages.SecurityOperationFmt, action, role, result)
}

// Status reports the manager label and the patrol system's status.
func (m *Manager) Status() component.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return component.Status{
		Manager: m.status,
		System:  m.guard.Status(),
	}
}

// Patrol returns the patrol flag.
func (m *Manager) Patrol() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.system.Patrol()
}

var _ component.Subsystem = (*Manager)(nil)
