// Package domain contains the core data types for the dispatch API.
// This package has zero external dependencies and is imported by every other
// server-side package (repo, service, handler).
package domain

import "time"

// Displacement is a single trip of a vehicle driven by a conductor for a
// client. It is created open and closed exactly once, when the ending
// odometer reading is recorded.
type Displacement struct {
	ID            int64
	StartOdometer float64
	EndOdometer   *float64 // nil while the trip is open
	StartTime     time.Time
	EndTime       *time.Time
	Checklist     string
	Reason        string
	Notes         string
	ConductorID   int64
	VehicleID     int64
	ClientID      int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOpen reports whether the displacement still awaits its closing reading.
// A zero reading counts as absent.
func (d Displacement) IsOpen() bool {
	return d.EndOdometer == nil || *d.EndOdometer == 0
}

// Distance returns the kilometres driven, or 0 while the trip is open.
func (d Displacement) Distance() float64 {
	if d.IsOpen() {
		return 0
	}
	return *d.EndOdometer - d.StartOdometer
}

// Closing carries the fields written when a displacement is closed.
// EndTime nil means "now".
type Closing struct {
	ID          int64
	EndOdometer float64
	EndTime     *time.Time
	Notes       string
}
