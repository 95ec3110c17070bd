// Package doctor runs self-checks over the configuration, the access policy
// and every subsystem.
package doctor

// Status is the outcome of one check.
type Status string

// Check outcomes. Only StatusFail makes the doctor command fail.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
