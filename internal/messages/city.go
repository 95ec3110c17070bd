package messages

// City messages returned by subsystem managers and their devices.
//
// These strings are part of the observable output of every operation and are
// matched verbatim by compatibility tests; change them with care.
const (
	// SubsystemNotFoundFmt formats the user-facing rendering of an unknown subsystem lookup.
	SubsystemNotFoundFmt    = "Error: Subsystem '%s' not found."
	SubsystemNotFoundErrFmt = "subsystem %q not found"

	SimulationStartBanner    = "--- Running SmartCity Simulation Cycle ---"
	SimulationCompleteBanner = "--- Simulation Cycle Complete ---"

	// TransportOptimizedFmt formats the transport optimize_flow result; %s is the change list.
	TransportOptimizedFmt  = "Transport: Optimized traffic flow. Changes: [%s]"
	TransportNoAction      = "Transport: No specific action taken."
	TrafficLightChangedFmt = "TrafficLight %d changed to %s"
	TrafficLightStatusFmt  = "Light %d: %s"
	TransportManagerStatus = "Operational"

	// LightingAdjustedFmt formats the lighting adjust_brightness result; %s is the change list.
	LightingAdjustedFmt      = "Lighting: Adjusted brightness based on time/motion. Changes: [%s]"
	LightingNoAction         = "Lighting: No specific action taken."
	LEDLightAdjustedFmt      = "LED Light %d adjusted to %d%%"
	LEDLightStatusFmt        = "LED Light %d: %d%%"
	HalogenLightAdjustedFmt  = "Halogen Light %d adjusted to %d%%"
	HalogenLightStatusFmt    = "Halogen Light %d: %d%%"
	LightingManagerStatus    = "Operational"
	LightingFamilyUnknownFmt = "unknown lighting family %q (supported: energy_efficient, standard)"

	// SecurityOperationFmt formats every security operation; action, role, guard result.
	SecurityOperationFmt   = "Security: Operation '%s' attempted with role '%s'. Result: %s"
	SecurityPatrolStartFmt = "Security System: Initiating full city patrol. Status: %s"
	SecurityBasicAccessFmt = "Security System: Accessing basic monitoring data for role '%s'."
	SecurityStatusFmt      = "Patrol Status: %s. Incidents: %d"
	SecurityManagerStatus  = "Monitoring"
	PatrolIdle             = "Idle"
	PatrolInProgress       = "Patrol in Progress"

	// GuardAccessLimitedFmt formats a denied guard request; allowed roles, resource status.
	GuardAccessLimitedFmt  = "Proxy: Access limited. Only %s may make this request. Current status: %s"
	PatrolAccessLimitedFmt = "Proxy: Access limited. Only %s can initiate patrol. Current status: %s"
	GuardPolicyParseFmt    = "failed to parse access policy: %w"
	GuardResourceRequired  = "guard resource is required"
	GuardAllowlistRequired = "guard allowlist must name at least one role"

	// EnergyReportFmt formats the energy report_consumption result; %s is the report text.
	EnergyReportFmt     = "Energy: Generated Consumption Report:\n%s"
	EnergyNoAction      = "Energy: No specific action taken."
	EnergyManagerStatus = "Monitoring"
	ReportHeader        = "--- Energy Consumption Report ---"
	ReportDateFmt       = "Date: %s"
	ReportTotalFmt      = "Total Consumption (kWh): %d"
	ReportUsageFmt      = "%s Usage: %d kWh"
	ReportFooter        = "--- End of Report ---"

	// MetricsGatherErrFmt wraps a registry gather failure.
	MetricsGatherErrFmt      = "gather metrics: %w"
	MetricsWriteFamilyErrFmt = "write metric family %s: %w"
)
