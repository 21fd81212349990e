package core

// service.go is the entry point for the submission lifecycle: intake,
// approval transitions, and the audit trail around them.
//
// The service owns no global state. It holds an explicit Store handle, an
// injected identity directory, and a clock, so callers (web handlers, tests,
// CLI tools) can wire whatever implementations they need.

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Service coordinates the submission lifecycle.
type Service struct {
	store Store
	dir   Directory
	audit *AuditLog
	now   func() time.Time
}

// NewService creates a service over the given store and identity directory.
func NewService(store Store, dir Directory) *Service {
	return &Service{
		store: store,
		dir:   dir,
		audit: NewAuditLog(),
		now:   time.Now,
	}
}

// WithClock overrides the service clock. Primarily useful for testing.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Classify validates a single (parameter, value) pair. Exposed for the
// presentation layer's live classification endpoint; pure passthrough to the
// validator.
func (s *Service) Classify(name string, value float64) ParameterResult {
	return Classify(name, value)
}

// Resolve looks up a login in the identity directory.
func (s *Service) Resolve(login string) (Identity, error) {
	return s.dir.Resolve(login)
}

// Submit runs the intake flow for a technician:
//
//  1. Resolve the technician and check the role.
//  2. Access check: the customer must be in the technician's authorized set.
//     This runs before any business-rule validation.
//  3. Completeness check: every parameter the test type requires must be
//     present with a positive real value.
//  4. Classify each provided value and aggregate the results.
//  5. A rejected aggregate returns ValidationRejectedError (with the
//     constructed record for operator feedback) and persists nothing; any
//     other outcome is appended to the store.
//
// The positive-value gate mirrors the reference intake behavior; it also
// means a true zero measurement cannot be submitted (see DESIGN.md).
func (s *Service) Submit(ctx context.Context, technicianID, customerID string, testType TestType, values map[string]float64) (*Submission, error) {
	tech, err := s.dir.Resolve(technicianID)
	if err != nil {
		return nil, err
	}
	if tech.Role != RoleTechnician {
		return nil, fmt.Errorf("submit: %w", ErrRoleDenied)
	}
	if !tech.AuthorizedFor(customerID) {
		slog.Warn("submit denied: unauthorized customer",
			"technician", technicianID,
			"customer", customerID,
		)
		return nil, fmt.Errorf("submit for %s: %w", customerID, ErrUnauthorizedCustomer)
	}
	if !testType.Valid() {
		return nil, fmt.Errorf("submit: %q: %w", testType, ErrUnknownTestType)
	}

	if err := checkComplete(ForTest(testType), values); err != nil {
		return nil, err
	}

	results := make(map[string]ParameterResult, len(values))
	for name, value := range values {
		results[name] = Classify(name, value)
	}
	overall, reasons := Aggregate(results)

	customerName, ok := s.dir.CustomerName(customerID)
	if !ok {
		customerName = "Unknown Customer"
	}

	sub := &Submission{
		TechnicianID:   tech.ID,
		TechnicianName: tech.Name,
		CustomerID:     customerID,
		CustomerName:   customerName,
		TestType:       testType,
		Parameters:     results,
		Timestamp:      s.now(),
		OverallStatus:  overall,
	}

	if overall == StatusRejected {
		// The record is handed back for operator feedback but never stored;
		// the audit trail keeps the only durable trace of the attempt.
		s.audit.Record(ctx, s.now(), AuditEntry{
			Action:     ActionSubmitRejected,
			ActorID:    tech.ID,
			ActorName:  tech.Name,
			CustomerID: customerID,
			Status:     StatusRejected,
			Reason:     fmt.Sprintf("%d parameter(s) outside approval band", len(reasons)),
		})
		return nil, &ValidationRejectedError{Submission: sub, Reasons: reasons}
	}

	id, err := s.store.Append(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}
	sub.ID = id

	s.audit.Record(ctx, s.now(), AuditEntry{
		Action:       ActionSubmit,
		SubmissionID: id,
		ActorID:      tech.ID,
		ActorName:    tech.Name,
		CustomerID:   customerID,
		Status:       overall,
	})

	slog.Info("submission created",
		"submission_id", id,
		"technician", tech.ID,
		"customer", customerID,
		"test_type", testType,
		"status", overall,
	)
	return sub, nil
}

// Approve transitions a pending submission to accepted.
// Manager-only; terminal.
func (s *Service) Approve(ctx context.Context, id int64, notes, approverID string) (*Submission, error) {
	return s.transition(ctx, id, notes, approverID, StatusAccepted, ActionApprove)
}

// Reject transitions a pending submission to rejected.
// Manager-only; terminal.
func (s *Service) Reject(ctx context.Context, id int64, notes, approverID string) (*Submission, error) {
	return s.transition(ctx, id, notes, approverID, StatusRejected, ActionReject)
}

// transition applies an approval state change. The mutation runs inside the
// store's update critical section so the pending check and the field updates
// are atomic; on any error the store is left unchanged.
func (s *Service) transition(ctx context.Context, id int64, notes, approverID string, target Status, action AuditAction) (*Submission, error) {
	approver, err := s.dir.Resolve(approverID)
	if err != nil {
		return nil, err
	}
	if approver.Role != RoleManager {
		return nil, fmt.Errorf("%s: %w", action, ErrRoleDenied)
	}

	sub, err := s.store.Update(ctx, id, func(sub *Submission) error {
		if sub.OverallStatus != StatusPendingApproval {
			return fmt.Errorf("submission %d is %s: %w", id, sub.OverallStatus, ErrInvalidTransition)
		}
		sub.OverallStatus = target
		sub.ApprovalNotes = notes
		sub.ApprovedBy = approverID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, s.now(), AuditEntry{
		Action:       action,
		SubmissionID: id,
		ActorID:      approver.ID,
		ActorName:    approver.Name,
		CustomerID:   sub.CustomerID,
		Status:       target,
		Reason:       notes,
	})

	slog.Info("submission transitioned",
		"submission_id", id,
		"status", target,
		"approved_by", approverID,
	)
	return sub, nil
}

// AuditTrail returns the lifecycle audit entries, newest first.
// Manager-only.
func (s *Service) AuditTrail(ctx context.Context, callerID string) ([]AuditEntry, error) {
	caller, err := s.dir.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != RoleManager {
		return nil, fmt.Errorf("audit trail: %w", ErrRoleDenied)
	}
	return s.audit.Entries(), nil
}

// checkComplete verifies that every required parameter is present with a
// strictly positive, real value. All offenders are reported at once.
func checkComplete(required []ParameterSpec, values map[string]float64) error {
	var inErr IncompleteInputError
	for _, spec := range required {
		v, ok := values[spec.Name]
		switch {
		case !ok:
			inErr.Missing = append(inErr.Missing, spec.Name)
		case math.IsNaN(v) || math.IsInf(v, 0) || v <= 0:
			inErr.NonPositive = append(inErr.NonPositive, spec.Name)
		}
	}
	if len(inErr.Missing) > 0 || len(inErr.NonPositive) > 0 {
		return &inErr
	}
	return nil
}
