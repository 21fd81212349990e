package core

// service_query.go implements the read side: role-filtered listings, status
// summaries, and accepted-value trend series.
//
// The access filter always runs before caller-supplied filters, so a filter
// can only narrow what a role is already allowed to see. In particular a
// customer can never observe a non-accepted submission, whatever filter
// combination they pass.

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Query returns the submissions visible to the caller, narrowed by the
// optional filter, ordered by ascending submission ID. With no intervening
// mutation, identical arguments return an identical ordered sequence.
func (s *Service) Query(ctx context.Context, callerID string, f QueryFilter) ([]*Submission, error) {
	caller, err := s.dir.Resolve(callerID)
	if err != nil {
		return nil, err
	}

	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return Visible(caller, f, subs), nil
}

// Get returns one submission if the caller may see it. Records outside the
// caller's view report not-found rather than leaking their existence.
func (s *Service) Get(ctx context.Context, callerID string, id int64) (*Submission, error) {
	caller, err := s.dir.Resolve(callerID)
	if err != nil {
		return nil, err
	}

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if vs := Visible(caller, QueryFilter{}, []*Submission{sub}); len(vs) == 0 {
		return nil, fmt.Errorf("submission %d: %w", id, ErrNotFound)
	}
	return sub, nil
}

// PendingApprovals returns the manager approval queue: every submission
// currently awaiting sign-off.
func (s *Service) PendingApprovals(ctx context.Context, callerID string) ([]*Submission, error) {
	caller, err := s.dir.Resolve(callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != RoleManager {
		return nil, fmt.Errorf("approval queue: %w", ErrRoleDenied)
	}

	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return Visible(caller, QueryFilter{Status: StatusPendingApproval}, subs), nil
}

// Summary counts submissions by status over the caller's filtered view.
func (s *Service) Summary(ctx context.Context, callerID string, f QueryFilter) (Summary, error) {
	subs, err := s.Query(ctx, callerID, f)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, sub := range subs {
		sum.Total++
		switch sub.OverallStatus {
		case StatusAccepted:
			sum.Accepted++
		case StatusPendingApproval:
			sum.Pending++
		case StatusRejected:
			sum.Rejected++
		}
	}
	return sum, nil
}

// Trend returns the ordered accepted-value history of one parameter for one
// customer, with the acceptable band for client-side limit display.
// Only parameter results that were individually accepted contribute points.
func (s *Service) Trend(ctx context.Context, callerID, customerID, parameter string) (TrendSeries, error) {
	caller, err := s.dir.Resolve(callerID)
	if err != nil {
		return TrendSeries{}, err
	}
	if caller.Role != RoleManager && !caller.AuthorizedFor(customerID) {
		return TrendSeries{}, fmt.Errorf("trend for %s: %w", customerID, ErrRoleDenied)
	}

	spec, ok := Lookup(parameter)
	if !ok {
		return TrendSeries{}, fmt.Errorf("trend: %q: %w", parameter, ErrUnknownParameter)
	}

	subs, err := s.store.List(ctx)
	if err != nil {
		return TrendSeries{}, fmt.Errorf("list submissions: %w", err)
	}

	series := TrendSeries{
		CustomerID:    customerID,
		Parameter:     parameter,
		Unit:          spec.Unit,
		AcceptableMin: spec.Acceptable.Min,
		AcceptableMax: spec.Acceptable.Max,
	}
	for _, sub := range subs {
		if sub.CustomerID != customerID || sub.OverallStatus != StatusAccepted {
			continue
		}
		if r, ok := sub.Parameters[parameter]; ok && r.Status == StatusAccepted {
			series.Points = append(series.Points, TrendPoint{Timestamp: sub.Timestamp, Value: r.Value})
		}
	}
	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Timestamp.Before(series.Points[j].Timestamp)
	})
	return series, nil
}

// Visible applies the role-based access filter and then the caller-supplied
// filter to an ordered submission list. Pure function; the input order
// (ascending ID) is preserved.
//
// Per role:
//   - Technician: own submissions only.
//   - Manager: everything.
//   - Customer: own customer's accepted submissions only. Non-accepted
//     records are invisible to customers even for their own customer.
func Visible(caller Identity, f QueryFilter, subs []*Submission) []*Submission {
	result := make([]*Submission, 0, len(subs))
	for _, sub := range subs {
		switch caller.Role {
		case RoleTechnician:
			if sub.TechnicianID != caller.ID {
				continue
			}
		case RoleCustomer:
			if sub.CustomerID != caller.CustomerID || sub.OverallStatus != StatusAccepted {
				continue
			}
		case RoleManager:
			// sees all
		default:
			continue
		}

		if f.CustomerID != "" && sub.CustomerID != f.CustomerID {
			continue
		}
		if f.TechnicianID != "" && sub.TechnicianID != f.TechnicianID {
			continue
		}
		if f.Status != "" && sub.OverallStatus != f.Status {
			continue
		}
		if !f.Date.IsZero() && !sameDay(f.Date, sub.Timestamp) {
			continue
		}
		result = append(result, sub)
	}
	return result
}

// sameDay reports whether two instants fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
