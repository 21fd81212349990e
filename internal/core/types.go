package core

import (
	"context"
	"time"
)

// Status is the classification outcome for a parameter value or a whole
// submission. The set is closed; no other values are valid anywhere in the
// system.
type Status string

const (
	StatusAccepted        Status = "accepted"
	StatusPendingApproval Status = "pending_approval"
	StatusRejected        Status = "rejected"
)

// Valid reports whether s is one of the defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAccepted, StatusPendingApproval, StatusRejected:
		return true
	}
	return false
}

// TestType selects which parameter set a submission must cover.
type TestType string

const (
	TestBasic     TestType = "basic"      // soil/water pH and EC only
	TestFullSuite TestType = "full_suite" // the complete catalog
)

// Valid reports whether t is a defined test type.
func (t TestType) Valid() bool {
	return t == TestBasic || t == TestFullSuite
}

// Role identifies what kind of caller is interacting with the service.
type Role string

const (
	RoleTechnician Role = "technician"
	RoleManager    Role = "manager"
	RoleCustomer   Role = "customer"
)

// Identity is a resolved caller: login, display name, role, and the
// permissions that come with the role. Technicians carry the set of customer
// IDs they may submit for; customers are bound to exactly one customer ID.
type Identity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Role       Role     `json:"role"`
	Customers  []string `json:"customers,omitempty"`
	CustomerID string   `json:"customer_id,omitempty"`
}

// AuthorizedFor reports whether the identity may act on behalf of the given
// customer. Managers may act for any customer; customers only for their own.
func (id Identity) AuthorizedFor(customerID string) bool {
	switch id.Role {
	case RoleManager:
		return true
	case RoleCustomer:
		return id.CustomerID == customerID
	case RoleTechnician:
		for _, c := range id.Customers {
			if c == customerID {
				return true
			}
		}
	}
	return false
}

// ParameterResult is the classification of one measured value. It is created
// once at submission time and never mutated afterwards.
type ParameterResult struct {
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
	Reason string  `json:"reason"`
}

// Submission is one technician submission for a customer. The ID is assigned
// by the store on append and never reused. OverallStatus, ApprovalNotes, and
// ApprovedBy are mutated only by the approval transitions; everything else is
// immutable after creation.
type Submission struct {
	ID             int64                      `json:"submission_id"`
	TechnicianID   string                     `json:"technician_id"`
	TechnicianName string                     `json:"technician_name"`
	CustomerID     string                     `json:"customer_id"`
	CustomerName   string                     `json:"customer_name"`
	TestType       TestType                   `json:"test_type"`
	Parameters     map[string]ParameterResult `json:"parameters"`
	Timestamp      time.Time                  `json:"timestamp"`
	OverallStatus  Status                     `json:"overall_status"`
	ApprovalNotes  string                     `json:"approval_notes"`
	ApprovedBy     string                     `json:"approved_by"`
}

// Clone returns a deep copy. Stores hand out clones so callers can never
// mutate a record except through the defined transitions.
func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Parameters = make(map[string]ParameterResult, len(s.Parameters))
	for k, v := range s.Parameters {
		cp.Parameters[k] = v
	}
	return &cp
}

// QueryFilter narrows a submission listing. Zero values mean "no filter".
// The access filter is applied before any of these; filters can only narrow
// what a role is already allowed to see.
type QueryFilter struct {
	CustomerID   string
	TechnicianID string
	Status       Status
	Date         time.Time // matches the calendar day of Timestamp (UTC)
}

// Summary holds status counts over a filtered submission view.
type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// TrendPoint is one accepted measurement in a customer's history.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendSeries is the ordered accepted-value history for one parameter of one
// customer, plus the acceptable band so clients can render limits. Chart
// rendering itself is a presentation concern and stays out of the core.
type TrendSeries struct {
	CustomerID    string       `json:"customer_id"`
	Parameter     string       `json:"parameter"`
	Unit          string       `json:"unit"`
	AcceptableMin float64      `json:"acceptable_min"`
	AcceptableMax float64      `json:"acceptable_max"`
	Points        []TrendPoint `json:"points"`
}

// Store is the persistence interface the core requires: append, lookup,
// guarded update, and listing in insertion order. Satisfied by the memory
// and postgres implementations in internal/store.
type Store interface {
	// Append assigns the next submission ID, persists the record, and
	// returns the assigned ID.
	Append(ctx context.Context, sub *Submission) (int64, error)

	// Get returns a copy of the submission with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Submission, error)

	// Update applies mutate to the stored record under the store's write
	// lock. If mutate returns an error the record is left unchanged and the
	// error is returned. Returns ErrNotFound for unknown IDs.
	Update(ctx context.Context, id int64, mutate func(*Submission) error) (*Submission, error)

	// List returns copies of all submissions ordered by ascending ID.
	List(ctx context.Context) ([]*Submission, error)
}

// Directory resolves login identities to roles and permissions. Real
// authentication is out of scope; the directory is an externally-configured
// mapping injected into the service.
type Directory interface {
	// Resolve returns the identity for a login, or ErrUnknownIdentity.
	Resolve(login string) (Identity, error)

	// CustomerName returns the display name for a customer ID.
	CustomerName(customerID string) (string, bool)
}
