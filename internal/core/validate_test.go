package core_test

import (
	"testing"

	"github.com/aswanig/labportal/internal/core"
	_ "github.com/aswanig/labportal/internal/core/params" // Register the parameter catalog
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		parameter  string
		value      float64
		wantStatus core.Status
	}{
		{
			name:       "soil pH inside acceptable range",
			parameter:  "soil_ph",
			value:      7.2,
			wantStatus: core.StatusAccepted,
		},
		{
			name:       "soil pH below acceptable but inside approval band",
			parameter:  "soil_ph",
			value:      5.8,
			wantStatus: core.StatusPendingApproval,
		},
		{
			name:       "soil pH below approval minimum",
			parameter:  "soil_ph",
			value:      4.0,
			wantStatus: core.StatusRejected,
		},
		{
			name:       "acceptable minimum is inclusive",
			parameter:  "soil_ph",
			value:      6.0,
			wantStatus: core.StatusAccepted,
		},
		{
			name:       "acceptable maximum is inclusive",
			parameter:  "soil_ph",
			value:      8.0,
			wantStatus: core.StatusAccepted,
		},
		{
			name:       "approval minimum is inclusive",
			parameter:  "soil_ph",
			value:      5.5,
			wantStatus: core.StatusPendingApproval,
		},
		{
			name:       "approval maximum is inclusive",
			parameter:  "soil_ph",
			value:      8.5,
			wantStatus: core.StatusPendingApproval,
		},
		{
			name:       "just above approval maximum",
			parameter:  "soil_ph",
			value:      8.51,
			wantStatus: core.StatusRejected,
		},
		{
			name:       "water EC above acceptable but inside approval band",
			parameter:  "water_ec",
			value:      1.8,
			wantStatus: core.StatusPendingApproval,
		},
		{
			name:       "nitrogen inside acceptable range",
			parameter:  "nitrogen",
			value:      35,
			wantStatus: core.StatusAccepted,
		},
		{
			name:       "unknown parameter classifies as rejected",
			parameter:  "uranium",
			value:      1.0,
			wantStatus: core.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.Classify(tt.parameter, tt.value)
			if got.Status != tt.wantStatus {
				t.Errorf("Classify(%s, %v).Status = %s, want %s", tt.parameter, tt.value, got.Status, tt.wantStatus)
			}
			if got.Value != tt.value {
				t.Errorf("Classify(%s, %v).Value = %v, want %v", tt.parameter, tt.value, got.Value, tt.value)
			}
			if got.Reason == "" {
				t.Errorf("Classify(%s, %v) returned empty reason", tt.parameter, tt.value)
			}
		})
	}
}

// TestClassify_BandEdges walks the whole catalog and checks the three bands
// at their edges for every parameter.
func TestClassify_BandEdges(t *testing.T) {
	for _, spec := range core.All() {
		if got := core.Classify(spec.Name, spec.Acceptable.Min).Status; got != core.StatusAccepted {
			t.Errorf("%s at acceptable min: got %s, want accepted", spec.Name, got)
		}
		if got := core.Classify(spec.Name, spec.Acceptable.Max).Status; got != core.StatusAccepted {
			t.Errorf("%s at acceptable max: got %s, want accepted", spec.Name, got)
		}
		if spec.Approval.Min < spec.Acceptable.Min {
			if got := core.Classify(spec.Name, spec.Approval.Min).Status; got != core.StatusPendingApproval {
				t.Errorf("%s at approval min: got %s, want pending_approval", spec.Name, got)
			}
		}
		if spec.Approval.Max > spec.Acceptable.Max {
			if got := core.Classify(spec.Name, spec.Approval.Max).Status; got != core.StatusPendingApproval {
				t.Errorf("%s at approval max: got %s, want pending_approval", spec.Name, got)
			}
		}
		if got := core.Classify(spec.Name, spec.Approval.Max*2+1).Status; got != core.StatusRejected {
			t.Errorf("%s above approval max: got %s, want rejected", spec.Name, got)
		}
	}
}

// TestClassify_Deterministic verifies classification is a pure function.
func TestClassify_Deterministic(t *testing.T) {
	first := core.Classify("soil_ec", 2.5)
	for i := 0; i < 10; i++ {
		if got := core.Classify("soil_ec", 2.5); got != first {
			t.Fatalf("Classify not deterministic: %+v vs %+v", got, first)
		}
	}
}
