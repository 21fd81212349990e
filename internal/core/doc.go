// Package core provides the business logic for laboratory test submissions.
//
// This package is the heart of the lab portal, containing all domain logic
// independent of any UI or transport layer. It can be used by web handlers,
// CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Parameter Catalog: Registered at init time, each parameter carries an
//     acceptable range, a wider approval range, and a display unit.
//   - Validator: Classifies a single (parameter, value) pair into a status.
//   - Aggregator: Derives a submission's overall status from its parameter
//     results using a weakest-link rule.
//   - Service: The main entry point for the submission lifecycle
//     (submit, approve, reject, query).
//   - Audit: Trail of all lifecycle actions, including rejected intakes.
//
// # Parameter Catalog
//
// Parameters are registered at init time using [Register]. The catalog is
// closed: no runtime registration happens after startup, and every parameter
// a caller can reference must exist in it.
//
//	core.Register(ParameterSpec{
//	    Name:       "soil_ph",
//	    Acceptable: Range{Min: 6.0, Max: 8.0},
//	    Approval:   Range{Min: 5.5, Max: 8.5},
//	    Unit:       "pH",
//	    Basic:      true,
//	})
//
// # Submission Lifecycle
//
// A technician submits values for a customer. Access checks run before any
// business validation: the customer must be in the technician's authorized
// set. Each value is classified against the catalog, the results are
// aggregated, and the submission is appended to the store unless the
// aggregate outcome is rejected. Submissions that land in pending_approval
// wait for a manager to call [Service.Approve] or [Service.Reject]; both
// transitions are terminal.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - AUTH001-AUTH003: Identity and authorization errors
//   - SUB001-SUB004: Intake and query validation errors
//   - TRN001-TRN002: Approval transition errors
package core
