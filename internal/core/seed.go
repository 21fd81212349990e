package core

import (
	"context"
	"fmt"
	"time"
)

// SeedDemoData appends three demonstration submissions to the store,
// bypassing the intake flow so the records land with fixed timestamps.
// Intended for demos and local development only.
func (s *Service) SeedDemoData(ctx context.Context) error {
	samples := []*Submission{
		{
			TechnicianID:   "tech1",
			TechnicianName: "John Doe",
			CustomerID:     "CUST001",
			CustomerName:   "ABC Corp",
			TestType:       TestBasic,
			Parameters: classifyAll(map[string]float64{
				"soil_ph":  7.2,
				"soil_ec":  1.5,
				"water_ph": 7.8,
				"water_ec": 0.8,
			}),
			Timestamp:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			OverallStatus: StatusAccepted,
		},
		{
			TechnicianID:   "tech1",
			TechnicianName: "John Doe",
			CustomerID:     "CUST002",
			CustomerName:   "XYZ Ltd",
			TestType:       TestBasic,
			Parameters: classifyAll(map[string]float64{
				"soil_ph":  5.8,
				"soil_ec":  2.2,
				"water_ph": 7.0,
				"water_ec": 1.2,
			}),
			Timestamp:     time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC),
			OverallStatus: StatusPendingApproval,
		},
		{
			TechnicianID:   "tech2",
			TechnicianName: "Jane Smith",
			CustomerID:     "CUST004",
			CustomerName:   "Green Energy",
			TestType:       TestFullSuite,
			Parameters: classifyAll(map[string]float64{
				"soil_ph":    6.8,
				"soil_ec":    1.1,
				"water_ph":   7.5,
				"water_ec":   0.9,
				"nitrogen":   35,
				"phosphorus": 45,
				"potassium":  250,
			}),
			Timestamp:     time.Date(2024, 1, 17, 9, 15, 0, 0, time.UTC),
			OverallStatus: StatusAccepted,
		},
	}

	for _, sub := range samples {
		if _, err := s.store.Append(ctx, sub); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

func classifyAll(values map[string]float64) map[string]ParameterResult {
	results := make(map[string]ParameterResult, len(values))
	for name, value := range values {
		results[name] = Classify(name, value)
	}
	return results
}
