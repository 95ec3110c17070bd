package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check config, access policy and subsystem health"

	DoctorHealthCheck = "Checking SmartCity health..."

	DoctorCheckNameConfig    = "Config"
	DoctorCheckNamePolicy    = "AccessPolicy"
	DoctorCheckNameSubsystem = "Subsystem"

	DoctorConfigDefault              = "No config file found; using built-in defaults"
	DoctorConfigDefaultRecommendFmt  = "Create %s to customize logging, seed, lighting family and output."
	DoctorConfigLoadedFmt            = "Configuration loaded from %s"
	DoctorConfigLoadFailedFmt        = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend        = "Check config.toml for TOML syntax errors."
	DoctorConfigInvalidFmt           = "Configuration is invalid: %v"
	DoctorConfigLoadLenientRecommend = "Fix the reported key; the other settings were read successfully."

	DoctorPolicyCompiledFmt = "Access policy compiled; patrol allowlist: %s"
	DoctorPolicyFailedFmt   = "Access policy failed to compile: %v"
	DoctorPolicyRecommend   = "Rebuild smartcity; the access policy is embedded in the binary."

	DoctorCityFailedFmt         = "Failed to start the city: %v"
	DoctorSubsystemOKFmt        = "%s: %s"
	DoctorSubsystemEmptyFmt     = "%s reported an empty status"
	DoctorSubsystemRecommendFmt = "Inspect %s with 'smartcity status %s'."

	// DoctorStatusOKLabel is the label for successful checks.
	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-13s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorFailureSummary = "❌ Some checks failed. Please address the issues above."
	DoctorSuccessSummary = "✅ All systems go!"
	DoctorFailureError   = "doctor checks failed"
)
