package core

// errors.go defines the caller-visible error kinds for the submission
// lifecycle and maps them to coded user-facing messages.
//
// Every error here is recoverable: the process never dies on one, and the
// presentation layer is responsible for rendering the mapped message. Users
// can quote the error code to support staff for faster diagnosis.
//
// Error codes are grouped by category:
//
//	AUTH001 - Unknown identity: login is not in the directory
//	AUTH002 - Role denied: the caller's role cannot perform this operation
//	AUTH003 - Unauthorized customer: customer outside the technician's set
//	SUB001  - Incomplete input: required values missing or non-positive
//	SUB002  - Validation rejected: at least one value outside its approval band
//	SUB003  - Unknown test type
//	SUB004  - Unknown parameter in a query
//	TRN001  - Invalid transition: submission is not pending approval
//	TRN002  - Not found: no submission with that ID
//	GEN001  - Fallback for unrecognized errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the submission lifecycle.
var (
	// ErrUnknownIdentity is returned by directory resolution for logins that
	// do not exist.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrRoleDenied is returned when an operation is invoked by a role that
	// may not perform it (e.g. a customer calling submit).
	ErrRoleDenied = errors.New("operation not permitted for this role")

	// ErrUnauthorizedCustomer is returned when a technician submits for a
	// customer outside their authorized set. The check runs before any
	// parameter classification.
	ErrUnauthorizedCustomer = errors.New("customer not assigned to technician")

	// ErrUnknownTestType is returned for test types other than basic or
	// full_suite.
	ErrUnknownTestType = errors.New("unknown test type")

	// ErrUnknownParameter is returned by queries that name a parameter
	// absent from the catalog. Classification itself never returns it; an
	// unknown name classifies as rejected instead.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrNotFound is returned for submission IDs that do not exist.
	ErrNotFound = errors.New("submission not found")

	// ErrInvalidTransition is returned when approve or reject is called on a
	// submission whose overall status is not pending_approval. The store is
	// left unchanged.
	ErrInvalidTransition = errors.New("submission is not pending approval")
)

// IncompleteInputError reports required parameter values that are missing or
// fail the positive-value intake gate. No record is created.
type IncompleteInputError struct {
	Missing     []string // required parameters absent from the input
	NonPositive []string // parameters with values <= 0 or not a real number
}

func (e *IncompleteInputError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing values: "+strings.Join(e.Missing, ", "))
	}
	if len(e.NonPositive) > 0 {
		parts = append(parts, "non-positive values: "+strings.Join(e.NonPositive, ", "))
	}
	if len(parts) == 0 {
		return "incomplete input"
	}
	return "incomplete input: " + strings.Join(parts, "; ")
}

// ValidationRejectedError reports an aggregate rejected outcome. The
// submission is still constructed so the caller can show the full
// per-parameter breakdown, but it is never appended to the store.
type ValidationRejectedError struct {
	Submission *Submission
	Reasons    []string // one entry per offending parameter
}

func (e *ValidationRejectedError) Error() string {
	return fmt.Sprintf("submission rejected: %s", strings.Join(e.Reasons, "; "))
}

// UserMessage is a user-friendly error with an action suggestion and a code
// for support reference.
type UserMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// MapError converts a technical error into a user-friendly message.
// The original error should still be logged server-side for debugging.
func MapError(err error) UserMessage {
	var incomplete *IncompleteInputError
	var rejected *ValidationRejectedError

	switch {
	case errors.Is(err, ErrUnknownIdentity):
		return UserMessage{
			Code:    "AUTH001",
			Message: "Unknown user",
			Action:  "Check the identity header or contact an administrator",
		}
	case errors.Is(err, ErrRoleDenied):
		return UserMessage{
			Code:    "AUTH002",
			Message: "Your role cannot perform this operation",
		}
	case errors.Is(err, ErrUnauthorizedCustomer):
		return UserMessage{
			Code:    "AUTH003",
			Message: "Customer ID not assigned to you or invalid",
			Action:  "Select one of your assigned customers",
		}
	case errors.As(err, &incomplete):
		return UserMessage{
			Code:    "SUB001",
			Message: "Please enter all parameter values",
			Action:  "Every required parameter needs a positive value",
		}
	case errors.As(err, &rejected):
		return UserMessage{
			Code:    "SUB002",
			Message: "Submission rejected: " + strings.Join(rejected.Reasons, "; "),
			Action:  "Re-measure the offending parameters and submit again",
		}
	case errors.Is(err, ErrUnknownTestType):
		return UserMessage{
			Code:    "SUB003",
			Message: "Unknown test type",
			Action:  "Use basic or full_suite",
		}
	case errors.Is(err, ErrUnknownParameter):
		return UserMessage{
			Code:    "SUB004",
			Message: "Unknown parameter",
			Action:  "Check the catalog for valid parameter names",
		}
	case errors.Is(err, ErrInvalidTransition):
		return UserMessage{
			Code:    "TRN001",
			Message: "Submission is not awaiting approval",
			Action:  "Refresh the approval queue; another manager may have acted on it",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Code:    "TRN002",
			Message: "Submission not found",
		}
	default:
		return UserMessage{
			Code:    "GEN001",
			Message: "An unexpected error occurred",
			Action:  "Please try again; quote this code if the problem persists",
		}
	}
}
