package security

import (
	"fmt"

	"github.com/conn-castle/smart-city/internal/guard"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/sample"
)

const maxIncidents = 2

// PatrolSystem is the sensitive resource behind the security guard.
// The patrol flag moves from Idle to in progress once and never reverts.
type PatrolSystem struct {
	patrol string
	src    sample.Source
}

// NewPatrolSystem returns an idle patrol system.
func NewPatrolSystem(src sample.Source) *PatrolSystem {
	return &PatrolSystem{patrol: messages.PatrolIdle, src: src}
}

// Request starts a full city patrol for admins. Other roles only read
// monitoring data; in practice the guard answers them before they get here.
func (p *PatrolSystem) Request(role guard.Role) string {
	if role == guard.RoleAdmin {
		p.patrol = messages.PatrolInProgress
		return fmt.Sprintf(messages.SecurityPatrolStartFmt, p.patrol)
	}
	return fmt.Sprintf(messages.SecurityBasicAccessFmt, role)
}

// Status reports the patrol flag and a fresh incident count in [0, 2].
func (p *PatrolSystem) Status() string {
	return fmt.Sprintf(messages.SecurityStatusFmt, p.patrol, sample.Between(p.src, 0, maxIncidents))
}

// Patrol returns the patrol flag without sampling incidents.
func (p *PatrolSystem) Patrol() string {
	return p.patrol
}

var _ guard.Resource = (*PatrolSystem)(nil)
