// Package city is the single entry point to the smart-city simulation.
//
// A Facade owns one manager per subsystem and dispatches operations by
// subsystem name. The process-wide instance is obtained with Instance or
// Default; New builds an independent facade for tests and embedding.
package city

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/energy"
	"github.com/conn-castle/smart-city/internal/lighting"
	"github.com/conn-castle/smart-city/internal/metrics"
	"github.com/conn-castle/smart-city/internal/sample"
	"github.com/conn-castle/smart-city/internal/security"
	"github.com/conn-castle/smart-city/internal/transport"
)

// Subsystem names in dispatch order.
const (
	Transport = "transport"
	Lighting  = "lighting"
	Security  = "security"
	Energy    = "energy"
)

var subsystemOrder = []string{Transport, Lighting, Security, Energy}

// simulationSteps is the representative action run per subsystem, in order.
var simulationSteps = []struct {
	subsystem string
	action    string
}{
	{Transport, transport.ActionOptimizeFlow},
	{Lighting, lighting.ActionAdjustBrightness},
	{Security, security.ActionRunPatrol},
	{Energy, energy.ActionReportConsumption},
}

// Options configures a Facade.
type Options struct {
	// Source supplies every random reading. If nil, an entropy-seeded source is used.
	Source sample.Source
	// Logger receives structured records. If nil, uses slog.Default().
	Logger *slog.Logger
	// Metrics counts operations. If nil, a fresh recorder is created.
	Metrics *metrics.Recorder
	// LightingFamily selects the street light family; empty means energy_efficient.
	LightingFamily string
}

// Facade aggregates the four subsystem managers.
// The name to manager map is fixed at construction; each manager serializes
// its own operations, so a Facade is safe for concurrent use.
type Facade struct {
	subsystems map[string]component.Subsystem
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// New builds a facade with freshly constructed managers.
func New(opts Options) (*Facade, error) {
	src := opts.Source
	if src == nil {
		src = sample.New(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := opts.Metrics
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}

	family, err := lighting.NewFamily(opts.LightingFamily, src)
	if err != nil {
		return nil, err
	}
	securityManager, err := security.NewManager(security.Options{
		Source:  src,
		Logger:  logger,
		Metrics: recorder,
	})
	if err != nil {
		return nil, err
	}

	return &Facade{
		subsystems: map[string]component.Subsystem{
			Transport: transport.NewManager(),
			Lighting:  lighting.NewManager(family),
			Security:  securityManager,
			Energy:    energy.NewManager(src, recorder),
		},
		logger:  logger,
		metrics: recorder,
	}, nil
}

// SubsystemNames returns the subsystem names in dispatch order.
func (f *Facade) SubsystemNames() []string {
	return append([]string(nil), subsystemOrder...)
}

// Metrics returns the facade's recorder.
func (f *Facade) Metrics() *metrics.Recorder {
	return f.metrics
}

func (f *Facade) lookup(name string) (component.Subsystem, error) {
	s, ok := f.subsystems[name]
	if !ok {
		f.metrics.UnknownSubsystem()
		f.logger.Debug("unknown subsystem", "subsystem", name)
		return nil, &SubsystemNotFoundError{Name: name}
	}
	return s, nil
}

// SubsystemStatus returns the status of the named subsystem.
func (f *Facade) SubsystemStatus(name string) (component.Status, error) {
	s, err := f.lookup(name)
	if err != nil {
		return component.Status{}, err
	}
	return s.Status(), nil
}

// OperateSubsystem performs action on the named subsystem and returns its result text.
// Actions the subsystem does not recognize are no-ops, not errors.
func (f *Facade) OperateSubsystem(ctx context.Context, name string, action string) (string, error) {
	s, err := f.lookup(name)
	if err != nil {
		return "", err
	}
	f.metrics.Operation(name)
	result := s.Operate(ctx, action)
	f.logger.DebugContext(ctx, "subsystem operated", "subsystem", name, "action", action)
	return result, nil
}

// AllStatus returns the status of every subsystem keyed by name.
func (f *Facade) AllStatus() map[string]component.Status {
	out := make(map[string]component.Status, len(subsystemOrder))
	for _, name := range subsystemOrder {
		out[name] = f.subsystems[name].Status()
	}
	return out
}

// RunSimulation runs one representative action per subsystem in order and
// returns the resulting statuses. Step results are discarded; there is no
// rollback if a later step misbehaves.
func (f *Facade) RunSimulation(ctx context.Context) map[string]component.Status {
	runID := uuid.NewString()
	f.logger.InfoContext(ctx, "simulation started", "run_id", runID)
	for _, step := range simulationSteps {
		if _, err := f.OperateSubsystem(ctx, step.subsystem, step.action); err != nil {
			f.logger.ErrorContext(ctx, "simulation step failed", "run_id", runID, "subsystem", step.subsystem, "error", err)
		}
	}
	f.metrics.Simulation()
	f.logger.InfoContext(ctx, "simulation complete", "run_id", runID)
	return f.AllStatus()
}
