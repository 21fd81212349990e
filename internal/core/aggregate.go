package core

// aggregate.go derives a submission's overall status from its per-parameter
// results.
//
// The policy is weakest-link: one rejected parameter rejects the whole
// submission, and one pending parameter forces manager review even when every
// other value is clean. Severity only ever escalates as results are added.

import "sort"

// Aggregate combines per-parameter results into an overall status.
//
// Priority order, most severe wins:
//   - any rejected result: overall rejected
//   - else any pending_approval result: overall pending_approval
//   - else: accepted
//
// When the outcome is rejected, the returned reasons list one entry per
// offending parameter (sorted by name for stable output) so the caller can
// show the operator exactly what failed.
func Aggregate(results map[string]ParameterResult) (Status, []string) {
	overall := StatusAccepted
	var reasons []string

	for _, name := range sortedParameterNames(results) {
		switch r := results[name]; r.Status {
		case StatusRejected:
			overall = StatusRejected
			reasons = append(reasons, name+": "+r.Reason)
		case StatusPendingApproval:
			if overall == StatusAccepted {
				overall = StatusPendingApproval
			}
		}
	}

	return overall, reasons
}

func sortedParameterNames(results map[string]ParameterResult) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
