package core_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/aswanig/labportal/internal/core"
	_ "github.com/aswanig/labportal/internal/core/params"
)

// seededService returns a service whose store holds the three demo records:
// ID 1 tech1/CUST001 accepted, ID 2 tech1/CUST002 pending_approval,
// ID 3 tech2/CUST004 accepted.
func seededService(t *testing.T) *core.Service {
	t.Helper()
	svc, _ := newTestService(t)
	if err := svc.SeedDemoData(context.Background()); err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	return svc
}

func ids(subs []*core.Submission) []int64 {
	out := make([]int64, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.ID)
	}
	return out
}

func TestQuery_RoleVisibility(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	tests := []struct {
		caller  string
		wantIDs []int64
	}{
		{caller: "manager1", wantIDs: []int64{1, 2, 3}},
		{caller: "tech1", wantIDs: []int64{1, 2}},
		{caller: "tech2", wantIDs: []int64{3}},
		{caller: "customer1", wantIDs: []int64{1}},
		{caller: "customer2", wantIDs: []int64{}}, // own record exists but is pending
		{caller: "customer4", wantIDs: []int64{3}},
		{caller: "customer3", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.caller, func(t *testing.T) {
			subs, err := svc.Query(ctx, tt.caller, core.QueryFilter{})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if got := ids(subs); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("Query() IDs = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestQuery_Filters(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  string
		filter  core.QueryFilter
		wantIDs []int64
	}{
		{
			name:    "manager by status pending",
			caller:  "manager1",
			filter:  core.QueryFilter{Status: core.StatusPendingApproval},
			wantIDs: []int64{2},
		},
		{
			name:    "manager by customer",
			caller:  "manager1",
			filter:  core.QueryFilter{CustomerID: "CUST004"},
			wantIDs: []int64{3},
		},
		{
			name:    "manager by technician",
			caller:  "manager1",
			filter:  core.QueryFilter{TechnicianID: "tech1"},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "manager by date",
			caller:  "manager1",
			filter:  core.QueryFilter{Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)},
			wantIDs: []int64{2},
		},
		{
			name:    "technician cannot widen view via filter",
			caller:  "tech1",
			filter:  core.QueryFilter{CustomerID: "CUST004"},
			wantIDs: []int64{},
		},
		{
			name:    "combined filters",
			caller:  "manager1",
			filter:  core.QueryFilter{TechnicianID: "tech1", Status: core.StatusAccepted},
			wantIDs: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs, err := svc.Query(ctx, tt.caller, tt.filter)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if got := ids(subs); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("Query() IDs = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

// TestQuery_CustomerNeverSeesNonAccepted probes every filter combination a
// customer could pass; none may surface their pending record.
func TestQuery_CustomerNeverSeesNonAccepted(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	filters := []core.QueryFilter{
		{},
		{CustomerID: "CUST002"},
		{Status: core.StatusPendingApproval},
		{Status: core.StatusRejected},
		{TechnicianID: "tech1"},
		{CustomerID: "CUST002", Status: core.StatusPendingApproval, TechnicianID: "tech1"},
		{Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)},
	}

	for _, f := range filters {
		subs, err := svc.Query(ctx, "customer2", f)
		if err != nil {
			t.Fatalf("Query(%+v) error = %v", f, err)
		}
		for _, sub := range subs {
			if sub.OverallStatus != core.StatusAccepted {
				t.Errorf("filter %+v exposed non-accepted submission %d to customer", f, sub.ID)
			}
		}
	}
}

// TestQuery_Idempotent: identical queries with no intervening mutation return
// identical ordered results.
func TestQuery_Idempotent(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	first, err := svc.Query(ctx, "manager1", core.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	second, err := svc.Query(ctx, "manager1", core.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical queries returned different results")
	}
}

func TestGet_Visibility(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "tech1", 2); err != nil {
		t.Errorf("Get own submission: error = %v", err)
	}

	// Records outside the caller's view report not-found, not forbidden.
	if _, err := svc.Get(ctx, "tech1", 3); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get other technician's submission: error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, "customer2", 2); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get own pending as customer: error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, "manager1", 99); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get missing ID: error = %v, want ErrNotFound", err)
	}
}

func TestPendingApprovals(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	subs, err := svc.PendingApprovals(ctx, "manager1")
	if err != nil {
		t.Fatalf("PendingApprovals() error = %v", err)
	}
	if got := ids(subs); !reflect.DeepEqual(got, []int64{2}) {
		t.Errorf("PendingApprovals() IDs = %v, want [2]", got)
	}

	for _, login := range []string{"tech1", "customer1"} {
		if _, err := svc.PendingApprovals(ctx, login); !errors.Is(err, core.ErrRoleDenied) {
			t.Errorf("PendingApprovals as %s: error = %v, want ErrRoleDenied", login, err)
		}
	}
}

func TestSummary(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	sum, err := svc.Summary(ctx, "manager1", core.QueryFilter{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	want := core.Summary{Total: 3, Accepted: 2, Pending: 1}
	if sum != want {
		t.Errorf("Summary() = %+v, want %+v", sum, want)
	}

	// Summaries respect the caller's view.
	sum, err = svc.Summary(ctx, "customer1", core.QueryFilter{})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	want = core.Summary{Total: 1, Accepted: 1}
	if sum != want {
		t.Errorf("customer Summary() = %+v, want %+v", sum, want)
	}
}

func TestTrend(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	// Add a second accepted record for CUST001 with a later timestamp so the
	// series has ordering to check.
	if _, err := svc.Submit(ctx, "tech1", "CUST001", core.TestBasic, basicValues()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	series, err := svc.Trend(ctx, "manager1", "CUST001", "soil_ph")
	if err != nil {
		t.Fatalf("Trend() error = %v", err)
	}
	if series.Unit != "pH" {
		t.Errorf("Unit = %q, want pH", series.Unit)
	}
	if series.AcceptableMin != 6.0 || series.AcceptableMax != 8.0 {
		t.Errorf("acceptable band = [%v, %v], want [6, 8]", series.AcceptableMin, series.AcceptableMax)
	}
	if len(series.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(series.Points))
	}
	if series.Points[0].Timestamp.After(series.Points[1].Timestamp) {
		t.Error("points are not in chronological order")
	}
	if series.Points[0].Value != 7.2 || series.Points[1].Value != 7.0 {
		t.Errorf("point values = %v, %v; want 7.2, 7", series.Points[0].Value, series.Points[1].Value)
	}
}

func TestTrend_Authorization(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	// A customer may see their own trend.
	if _, err := svc.Trend(ctx, "customer1", "CUST001", "soil_ph"); err != nil {
		t.Errorf("customer own trend: error = %v", err)
	}
	// But not another customer's.
	if _, err := svc.Trend(ctx, "customer1", "CUST004", "soil_ph"); !errors.Is(err, core.ErrRoleDenied) {
		t.Errorf("customer foreign trend: error = %v, want ErrRoleDenied", err)
	}
	// A technician may see trends for assigned customers only.
	if _, err := svc.Trend(ctx, "tech1", "CUST001", "soil_ph"); err != nil {
		t.Errorf("technician assigned trend: error = %v", err)
	}
	if _, err := svc.Trend(ctx, "tech1", "CUST004", "soil_ph"); !errors.Is(err, core.ErrRoleDenied) {
		t.Errorf("technician unassigned trend: error = %v, want ErrRoleDenied", err)
	}
	// Unknown parameters are reported, not silently empty.
	if _, err := svc.Trend(ctx, "manager1", "CUST001", "uranium"); !errors.Is(err, core.ErrUnknownParameter) {
		t.Errorf("unknown parameter: error = %v, want ErrUnknownParameter", err)
	}
}

// TestTrend_OnlyAcceptedContribute: pending submissions and non-accepted
// parameter results stay out of the series.
func TestTrend_OnlyAcceptedContribute(t *testing.T) {
	svc := seededService(t)

	// CUST002's only record is pending.
	series, err := svc.Trend(context.Background(), "manager1", "CUST002", "soil_ph")
	if err != nil {
		t.Fatalf("Trend() error = %v", err)
	}
	if len(series.Points) != 0 {
		t.Errorf("got %d points from a pending-only customer, want 0", len(series.Points))
	}
}
