package core_test

import (
	"testing"

	"github.com/aswanig/labportal/internal/core"
	_ "github.com/aswanig/labportal/internal/core/params"
)

func TestCatalog_Contents(t *testing.T) {
	if got := core.Count(); got != 20 {
		t.Errorf("Count() = %d, want 20", got)
	}

	basic := core.Basic()
	wantBasic := []string{"soil_ph", "soil_ec", "water_ph", "water_ec"}
	if len(basic) != len(wantBasic) {
		t.Fatalf("Basic() has %d parameters, want %d", len(basic), len(wantBasic))
	}
	for i, name := range wantBasic {
		if basic[i].Name != name {
			t.Errorf("Basic()[%d] = %s, want %s", i, basic[i].Name, name)
		}
	}

	spec, ok := core.Lookup("soil_ph")
	if !ok {
		t.Fatal("Lookup(soil_ph) not found")
	}
	if spec.Acceptable != (core.Range{Min: 6.0, Max: 8.0}) {
		t.Errorf("soil_ph acceptable = %+v", spec.Acceptable)
	}
	if spec.Approval != (core.Range{Min: 5.5, Max: 8.5}) {
		t.Errorf("soil_ph approval = %+v", spec.Approval)
	}
	if spec.Unit != "pH" {
		t.Errorf("soil_ph unit = %q, want pH", spec.Unit)
	}

	if _, ok := core.Lookup("uranium"); ok {
		t.Error("Lookup(uranium) unexpectedly found")
	}
}

// TestCatalog_ApprovalContainsAcceptable checks the registration invariant
// holds for every entry in the live catalog.
func TestCatalog_ApprovalContainsAcceptable(t *testing.T) {
	for _, spec := range core.All() {
		if spec.Approval.Min > spec.Acceptable.Min || spec.Acceptable.Max > spec.Approval.Max {
			t.Errorf("%s: approval %+v does not contain acceptable %+v", spec.Name, spec.Approval, spec.Acceptable)
		}
		if spec.Acceptable.Min > spec.Acceptable.Max {
			t.Errorf("%s: acceptable range inverted: %+v", spec.Name, spec.Acceptable)
		}
		if spec.Unit == "" {
			t.Errorf("%s: missing unit", spec.Name)
		}
	}
}

func TestForTest(t *testing.T) {
	if got := len(core.ForTest(core.TestBasic)); got != 4 {
		t.Errorf("ForTest(basic) has %d parameters, want 4", got)
	}
	if got := len(core.ForTest(core.TestFullSuite)); got != core.Count() {
		t.Errorf("ForTest(full_suite) has %d parameters, want %d", got, core.Count())
	}
}

func TestRegister_Panics(t *testing.T) {
	tests := []struct {
		name string
		spec core.ParameterSpec
	}{
		{
			name: "duplicate name",
			spec: core.ParameterSpec{
				Name:       "soil_ph",
				Acceptable: core.Range{Min: 1, Max: 2},
				Approval:   core.Range{Min: 0, Max: 3},
			},
		},
		{
			name: "empty name",
			spec: core.ParameterSpec{
				Acceptable: core.Range{Min: 1, Max: 2},
				Approval:   core.Range{Min: 0, Max: 3},
			},
		},
		{
			name: "approval narrower than acceptable",
			spec: core.ParameterSpec{
				Name:       "bogus",
				Acceptable: core.Range{Min: 1, Max: 5},
				Approval:   core.Range{Min: 2, Max: 4},
			},
		},
		{
			name: "inverted acceptable range",
			spec: core.ParameterSpec{
				Name:       "bogus",
				Acceptable: core.Range{Min: 5, Max: 1},
				Approval:   core.Range{Min: 0, Max: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) did not panic", tt.spec)
				}
			}()
			core.Register(tt.spec)
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := core.Range{Min: 6.0, Max: 8.0}
	for _, v := range []float64{6.0, 7.0, 8.0} {
		if !r.Contains(v) {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
	for _, v := range []float64{5.99, 8.01} {
		if r.Contains(v) {
			t.Errorf("Contains(%v) = true, want false", v)
		}
	}
}
