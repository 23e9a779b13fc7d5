package domain

import "time"

// ExportRow is a single row in the displacement export.
// It is a flat, denormalized view: one row per displacement with the
// referenced client, conductor, and vehicle resolved by id. A reference that
// no longer resolves leaves its name fields empty.
type ExportRow struct {
	DisplacementID int64
	StartOdometer  float64
	EndOdometer    *float64
	StartTime      time.Time
	EndTime        *time.Time
	Distance       float64
	Open           bool
	Reason         string
	Checklist      string
	Notes          string

	ClientID      int64
	ClientName    string
	ConductorID   int64
	ConductorName string
	VehicleID     int64
	VehiclePlate  string
	VehicleModel  string
}
