package guard

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cedar-policy/cedar-go"

	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/metrics"
)

//go:embed access.cedar
var accessPolicy []byte

// Cedar entity types used when building requests.
const (
	roleEntityType     = "SmartCity::Role"
	resourceEntityType = "SmartCity::Resource"
	actionEntityType   = "SmartCity::Action"
	requestAction      = "request"
)

// Role names a caller's privilege level.
type Role string

// Roles known to the city.
const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleGuest   Role = "guest"
)

// Resource is a sensitive object whose requests must pass the guard.
type Resource interface {
	// Request performs the sensitive operation on behalf of role.
	Request(role Role) string
	// Status reads the resource's non-sensitive state.
	Status() string
}

// Config contains options for a Guard.
type Config struct {
	// ResourceID identifies the resource in policy evaluation and logs.
	ResourceID string
	// AllowedRoles is copied at construction and never changes afterwards.
	AllowedRoles []Role
	// Logger receives one structured record per decision. If nil, uses slog.Default().
	Logger *slog.Logger
	// Metrics counts decisions. May be nil.
	Metrics *metrics.Recorder
	// PolicyBytes replaces the embedded policy (for testing).
	PolicyBytes []byte
	// DeniedFmt formats the answer to a denied request from the quoted
	// allowed roles and the resource status. Empty selects a generic wording.
	DeniedFmt string
}

// Decision is the outcome of one authorization check.
type Decision struct {
	Allowed  bool
	PolicyID string
	Duration time.Duration
}

// Guard is a role-gated surrogate for a Resource.
type Guard struct {
	resource   Resource
	resourceID string
	allowed    []Role
	policies   *cedar.PolicySet
	deniedFmt  string
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// New wraps resource with a guard enforcing cfg.AllowedRoles.
func New(resource Resource, cfg Config) (*Guard, error) {
	if resource == nil {
		return nil, errors.New(messages.GuardResourceRequired)
	}
	if len(cfg.AllowedRoles) == 0 {
		return nil, errors.New(messages.GuardAllowlistRequired)
	}
	policyData := cfg.PolicyBytes
	if policyData == nil {
		policyData = accessPolicy
	}
	ps, err := cedar.NewPolicySetFromBytes("access.cedar", policyData)
	if err != nil {
		return nil, fmt.Errorf(messages.GuardPolicyParseFmt, err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	resourceID := cfg.ResourceID
	if resourceID == "" {
		resourceID = "resource"
	}
	deniedFmt := cfg.DeniedFmt
	if deniedFmt == "" {
		deniedFmt = messages.GuardAccessLimitedFmt
	}
	return &Guard{
		resource:   resource,
		resourceID: resourceID,
		allowed:    append([]Role(nil), cfg.AllowedRoles...),
		policies:   ps,
		deniedFmt:  deniedFmt,
		logger:     logger,
		metrics:    cfg.Metrics,
	}, nil
}

// ValidatePolicy reports whether the embedded access policy parses.
func ValidatePolicy() error {
	if _, err := cedar.NewPolicySetFromBytes("access.cedar", accessPolicy); err != nil {
		return fmt.Errorf(messages.GuardPolicyParseFmt, err)
	}
	return nil
}

// AllowedRoles returns a copy of the allowlist.
func (g *Guard) AllowedRoles() []Role {
	return append([]Role(nil), g.allowed...)
}

// Authorize evaluates whether role may issue a request against the resource.
func (g *Guard) Authorize(ctx context.Context, role Role) Decision {
	start := time.Now()
	decision, diagnostic := cedar.Authorize(g.policies, g.entities(role), g.request(role))

	result := Decision{
		Allowed:  decision == cedar.Allow,
		Duration: time.Since(start),
	}
	if len(diagnostic.Reasons) > 0 {
		result.PolicyID = string(diagnostic.Reasons[0].PolicyID)
	}

	g.logger.InfoContext(ctx, "access decision",
		"role", string(role),
		"resource", g.resourceID,
		"decision", result.Allowed,
		"policy_id", result.PolicyID,
		"duration_us", result.Duration.Microseconds(),
	)
	for _, e := range diagnostic.Errors {
		g.logger.ErrorContext(ctx, "policy evaluation error",
			"policy", string(e.PolicyID),
			"error", e.Message,
		)
	}
	g.metrics.AccessDecision(string(role), result.Allowed)
	return result
}

// Request forwards to the resource when role is allowed and otherwise answers
// with a limited-access message carrying the resource's status.
func (g *Guard) Request(ctx context.Context, role Role) string {
	if g.Authorize(ctx, role).Allowed {
		return g.resource.Request(role)
	}
	return fmt.Sprintf(g.deniedFmt, g.allowedList(), g.resource.Status())
}

// Status passes through to the resource; status reads are not sensitive.
func (g *Guard) Status() string {
	return g.resource.Status()
}

func (g *Guard) allowedList() string {
	quoted := make([]string, 0, len(g.allowed))
	for _, r := range g.allowed {
		quoted = append(quoted, "'"+string(r)+"'")
	}
	return strings.Join(quoted, " or ")
}

func (g *Guard) entities(role Role) cedar.EntityMap {
	roleUID := cedar.NewEntityUID(roleEntityType, cedar.String(role))
	resourceUID := cedar.NewEntityUID(resourceEntityType, cedar.String(g.resourceID))

	allowed := make([]cedar.Value, 0, len(g.allowed))
	for _, r := range g.allowed {
		allowed = append(allowed, cedar.String(r))
	}

	return cedar.EntityMap{
		roleUID: cedar.Entity{
			UID:     roleUID,
			Parents: cedar.NewEntityUIDSet(),
			Attributes: cedar.NewRecord(cedar.RecordMap{
				"role": cedar.String(role),
			}),
		},
		resourceUID: cedar.Entity{
			UID:     resourceUID,
			Parents: cedar.NewEntityUIDSet(),
			Attributes: cedar.NewRecord(cedar.RecordMap{
				"allowed_roles": cedar.NewSet(allowed...),
			}),
		},
	}
}

func (g *Guard) request(role Role) cedar.Request {
	return cedar.Request{
		Principal: cedar.NewEntityUID(roleEntityType, cedar.String(role)),
		Action:    cedar.NewEntityUID(actionEntityType, requestAction),
		Resource:  cedar.NewEntityUID(resourceEntityType, cedar.String(g.resourceID)),
		Context:   cedar.NewRecord(cedar.RecordMap{}),
	}
}
