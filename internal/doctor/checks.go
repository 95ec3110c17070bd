package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/conn-castle/smart-city/internal/component"
	"github.com/conn-castle/smart-city/internal/config"
	"github.com/conn-castle/smart-city/internal/guard"
	"github.com/conn-castle/smart-city/internal/messages"
	"github.com/conn-castle/smart-city/internal/security"
)

var (
	resolvePathFunc       = config.ResolvePath
	loadConfigFunc        = config.LoadConfig
	loadConfigLenientFunc = config.LoadConfigLenient
	validatePolicyFunc    = guard.ValidatePolicy
)

// CheckConfig verifies that the config file resolved from explicit loads and
// validates. When validation fails but the TOML parses, CheckConfig returns a
// FAIL result together with the leniently loaded config so the remaining
// checks can still run with it. A missing default file is a warning and
// yields the built-in defaults.
func CheckConfig(explicit string) ([]Result, *config.Config) {
	path, fromUser, err := resolvePathFunc(explicit)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}

	cfg, err := loadConfigFunc(path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
		}}, cfg
	}

	if !fromUser && errors.Is(err, fs.ErrNotExist) {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        messages.DoctorConfigDefault,
			Recommendation: fmt.Sprintf(messages.DoctorConfigDefaultRecommendFmt, path),
		}}, config.Default()
	}

	if !errors.Is(err, config.ErrConfigValidation) {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}

	lenient, lenientErr := loadConfigLenientFunc(path)
	if lenientErr != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, lenientErr),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigInvalidFmt, err),
		Recommendation: messages.DoctorConfigLoadLenientRecommend,
	}}, lenient
}

// CheckPolicy verifies that the embedded access policy compiles.
func CheckPolicy() []Result {
	if err := validatePolicyFunc(); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePolicy,
			Message:        fmt.Sprintf(messages.DoctorPolicyFailedFmt, err),
			Recommendation: messages.DoctorPolicyRecommend,
		}}
	}
	roles := security.PatrolAllowlist()
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePolicy,
		Message:   fmt.Sprintf(messages.DoctorPolicyCompiledFmt, strings.Join(names, ", ")),
	}}
}

// Inspector is the read side of the city facade.
type Inspector interface {
	SubsystemNames() []string
	SubsystemStatus(name string) (component.Status, error)
}

// CheckSubsystems asks every subsystem for its status. A subsystem that
// cannot be found fails; one that reports no manager label warns.
func CheckSubsystems(city Inspector) []Result {
	names := city.SubsystemNames()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		status, err := city.SubsystemStatus(name)
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameSubsystem,
				Message:        err.Error(),
				Recommendation: fmt.Sprintf(messages.DoctorSubsystemRecommendFmt, name, name),
			})
		case status.Manager == "":
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameSubsystem,
				Message:        fmt.Sprintf(messages.DoctorSubsystemEmptyFmt, name),
				Recommendation: fmt.Sprintf(messages.DoctorSubsystemRecommendFmt, name, name),
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameSubsystem,
				Message:   fmt.Sprintf(messages.DoctorSubsystemOKFmt, name, status.Manager),
			})
		}
	}
	return results
}

// CityFailure reports a city that could not be started.
func CityFailure(err error) Result {
	return Result{
		Status:    StatusFail,
		CheckName: messages.DoctorCheckNameSubsystem,
		Message:   fmt.Sprintf(messages.DoctorCityFailedFmt, err),
	}
}
