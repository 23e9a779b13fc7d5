package domain

import "time"

// Client is a customer a displacement is made for.
type Client struct {
	ID             int64
	Name           string
	DocumentNumber string
	DocumentType   string
	Street         string
	Number         string
	District       string
	City           string
	State          string
	CreatedAt      time.Time
}

// Conductor is a licensed driver.
// LicenseExpiry is nil when unknown.
type Conductor struct {
	ID              int64
	Name            string
	LicenseNumber   string
	LicenseCategory string
	LicenseExpiry   *time.Time
	CreatedAt       time.Time
}

// Vehicle is a fleet vehicle. Year is 0 when unknown.
type Vehicle struct {
	ID        int64
	Plate     string
	MakeModel string
	Year      int
	CurrentKm float64
	CreatedAt time.Time
}
