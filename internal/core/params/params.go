// Package params registers the laboratory parameter catalog.
//
// Importing this package (for side effects) populates the core catalog with
// the scientific tolerance bands used for classification. The four basic
// parameters form the basic test; the full suite is everything here.
package params

import "github.com/aswanig/labportal/internal/core"

func init() {
	// Basic test parameters.
	core.Register(core.ParameterSpec{Name: "soil_ph", Acceptable: core.Range{Min: 6.0, Max: 8.0}, Approval: core.Range{Min: 5.5, Max: 8.5}, Unit: "pH", Basic: true})
	core.Register(core.ParameterSpec{Name: "soil_ec", Acceptable: core.Range{Min: 0.1, Max: 2.0}, Approval: core.Range{Min: 0.05, Max: 3.0}, Unit: "dS/m", Basic: true})
	core.Register(core.ParameterSpec{Name: "water_ph", Acceptable: core.Range{Min: 6.5, Max: 8.5}, Approval: core.Range{Min: 6.0, Max: 9.0}, Unit: "pH", Basic: true})
	core.Register(core.ParameterSpec{Name: "water_ec", Acceptable: core.Range{Min: 0.1, Max: 1.5}, Approval: core.Range{Min: 0.05, Max: 2.0}, Unit: "dS/m", Basic: true})

	// Full suite parameters.
	core.Register(core.ParameterSpec{Name: "nitrogen", Acceptable: core.Range{Min: 10, Max: 50}, Approval: core.Range{Min: 5, Max: 70}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "phosphorus", Acceptable: core.Range{Min: 15, Max: 80}, Approval: core.Range{Min: 10, Max: 100}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "potassium", Acceptable: core.Range{Min: 100, Max: 400}, Approval: core.Range{Min: 80, Max: 500}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "organic_matter", Acceptable: core.Range{Min: 2.0, Max: 6.0}, Approval: core.Range{Min: 1.0, Max: 8.0}, Unit: "%"})
	core.Register(core.ParameterSpec{Name: "calcium", Acceptable: core.Range{Min: 200, Max: 800}, Approval: core.Range{Min: 150, Max: 1000}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "magnesium", Acceptable: core.Range{Min: 50, Max: 200}, Approval: core.Range{Min: 30, Max: 250}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "sulfur", Acceptable: core.Range{Min: 10, Max: 30}, Approval: core.Range{Min: 5, Max: 40}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "iron", Acceptable: core.Range{Min: 20, Max: 100}, Approval: core.Range{Min: 10, Max: 150}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "manganese", Acceptable: core.Range{Min: 5, Max: 50}, Approval: core.Range{Min: 2, Max: 80}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "zinc", Acceptable: core.Range{Min: 1, Max: 10}, Approval: core.Range{Min: 0.5, Max: 15}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "copper", Acceptable: core.Range{Min: 1, Max: 5}, Approval: core.Range{Min: 0.5, Max: 8}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "boron", Acceptable: core.Range{Min: 0.5, Max: 2.0}, Approval: core.Range{Min: 0.2, Max: 3.0}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "chloride", Acceptable: core.Range{Min: 10, Max: 100}, Approval: core.Range{Min: 5, Max: 150}, Unit: "mg/L"})
	core.Register(core.ParameterSpec{Name: "sodium", Acceptable: core.Range{Min: 20, Max: 200}, Approval: core.Range{Min: 10, Max: 300}, Unit: "mg/kg"})
	core.Register(core.ParameterSpec{Name: "cec", Acceptable: core.Range{Min: 10, Max: 30}, Approval: core.Range{Min: 5, Max: 40}, Unit: "cmol/kg"})
	core.Register(core.ParameterSpec{Name: "bulk_density", Acceptable: core.Range{Min: 1.0, Max: 1.6}, Approval: core.Range{Min: 0.8, Max: 1.8}, Unit: "g/cm³"})
}
