package core

import (
	"fmt"
	"sync"
)

// Range is an inclusive numeric band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the band. Both ends inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ParameterSpec defines one measurable parameter. The approval band must
// fully contain the acceptable band: values inside the acceptable band pass
// outright, values inside only the approval band need manager sign-off, and
// values outside both are rejected.
type ParameterSpec struct {
	Name       string `json:"name"`
	Acceptable Range  `json:"acceptable"`
	Approval   Range  `json:"approval"`
	Unit       string `json:"unit"`
	Basic      bool   `json:"basic"` // part of the four-parameter basic test
}

var (
	catalog      = make(map[string]ParameterSpec)
	catalogOrder []string
	catalogMu    sync.RWMutex
)

// Register adds a parameter to the catalog. Called from init functions in
// internal/core/params; the catalog is closed after process start.
// Panics on duplicate names or if the approval band does not contain the
// acceptable band.
func Register(spec ParameterSpec) {
	catalogMu.Lock()
	defer catalogMu.Unlock()

	if spec.Name == "" {
		panic("parameter spec has no name")
	}
	if _, exists := catalog[spec.Name]; exists {
		panic(fmt.Sprintf("parameter already registered: %s", spec.Name))
	}
	if spec.Approval.Min > spec.Acceptable.Min || spec.Acceptable.Min > spec.Acceptable.Max || spec.Acceptable.Max > spec.Approval.Max {
		panic(fmt.Sprintf("parameter %s: approval range must contain acceptable range", spec.Name))
	}

	catalog[spec.Name] = spec
	catalogOrder = append(catalogOrder, spec.Name)
}

// Lookup returns a parameter spec by name.
// Returns false if not found.
func Lookup(name string) (ParameterSpec, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	spec, ok := catalog[name]
	return spec, ok
}

// All returns every registered parameter in registration order.
func All() []ParameterSpec {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	result := make([]ParameterSpec, 0, len(catalogOrder))
	for _, name := range catalogOrder {
		result = append(result, catalog[name])
	}
	return result
}

// Basic returns the basic test subset in registration order.
func Basic() []ParameterSpec {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	var result []ParameterSpec
	for _, name := range catalogOrder {
		if spec := catalog[name]; spec.Basic {
			result = append(result, spec)
		}
	}
	return result
}

// ForTest returns the parameter set a test type requires.
func ForTest(t TestType) []ParameterSpec {
	if t == TestBasic {
		return Basic()
	}
	return All()
}

// Count returns the number of registered parameters.
func Count() int {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return len(catalog)
}

// ClearCatalog removes all registered parameters.
// Primarily useful for testing.
func ClearCatalog() {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = make(map[string]ParameterSpec)
	catalogOrder = nil
}
