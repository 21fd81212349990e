package core

// validate.go classifies a single measurement against the parameter catalog.
//
// Classification is a pure function: no side effects, deterministic, and
// idempotent. Unknown parameters classify as rejected rather than failing
// hard, so a bad name surfaces to the caller inside the result like any
// other out-of-band value.

import "fmt"

// Classify validates a single (parameter, value) pair against the catalog.
//
// Resolution order:
//  1. Unknown parameter name: rejected.
//  2. Value inside the acceptable band: accepted.
//  3. Value inside the wider approval band: pending_approval.
//  4. Otherwise: rejected, with the approval bounds and unit in the reason.
//
// All range comparisons are inclusive on both ends. No unit conversion is
// performed; the value must already share units with the catalog entry.
func Classify(name string, value float64) ParameterResult {
	spec, ok := Lookup(name)
	if !ok {
		return ParameterResult{
			Value:  value,
			Status: StatusRejected,
			Reason: fmt.Sprintf("Unknown parameter: %s", name),
		}
	}

	switch {
	case spec.Acceptable.Contains(value):
		return ParameterResult{
			Value:  value,
			Status: StatusAccepted,
			Reason: "Value within acceptable range",
		}
	case spec.Approval.Contains(value):
		return ParameterResult{
			Value:  value,
			Status: StatusPendingApproval,
			Reason: "Value requires manager approval",
		}
	default:
		return ParameterResult{
			Value:  value,
			Status: StatusRejected,
			Reason: fmt.Sprintf("Value outside acceptable range (%g-%g %s)", spec.Approval.Min, spec.Approval.Max, spec.Unit),
		}
	}
}
