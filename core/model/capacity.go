package model

import "time"

// Worker is one member of the maintenance workforce roster.
type Worker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty Specialty `json:"specialty"`
	Shift     Shift     `json:"shift"`
	Available bool      `json:"available"`
}

// TradeCapacity declares the capacity for one (specialty, shift) pair.
// It is read-only input to leveling, usually derived from workforce rosters.
type TradeCapacity struct {
	Specialty      Specialty `json:"specialty"`
	Shift          Shift     `json:"shift"`
	Headcount      int       `json:"headcount"`
	HoursPerWorker float64   `json:"hours_per_worker"`
	TotalHours     float64   `json:"total_hours"`
}

// ShutdownWindow is a planned equipment outage during which shutdown-required
// work can be executed.
type ShutdownWindow struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"`
	Areas []string  `json:"areas"`
}
