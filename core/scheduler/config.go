package scheduler

import "fmt"

// Config defines planning parameters loaded from configuration.
type Config struct {
	// ShiftCapacityHours is the per-shift capacity ceiling for one trade.
	ShiftCapacityHours float64 `json:"shift_capacity_hours" yaml:"shift_capacity_hours"`
	// WindowDays is the length of the weekly execution window.
	WindowDays int `json:"window_days" yaml:"window_days"`
	// SupportTaskHours is the duration of each standard support task.
	SupportTaskHours float64 `json:"support_task_hours" yaml:"support_task_hours"`
	// CraneTaskHours is the duration of a crane-support task.
	CraneTaskHours float64 `json:"crane_task_hours" yaml:"crane_task_hours"`
	// CraneThresholdHours is the package duration above which mechanical
	// work gets crane support.
	CraneThresholdHours float64 `json:"crane_threshold_hours" yaml:"crane_threshold_hours"`
}

// SetDefaults applies the documented defaults: an 8-hour shift capacity, a
// 4-day Thursday-to-Sunday window and half-hour support tasks.
func (c *Config) SetDefaults() {
	if c.ShiftCapacityHours <= 0 {
		c.ShiftCapacityHours = 8
	}
	if c.WindowDays <= 0 {
		c.WindowDays = 4
	}
	if c.SupportTaskHours <= 0 {
		c.SupportTaskHours = 0.5
	}
	if c.CraneTaskHours <= 0 {
		c.CraneTaskHours = 1
	}
	if c.CraneThresholdHours <= 0 {
		c.CraneThresholdHours = 4
	}
}

// Validate checks the configured values.
func (c Config) Validate() error {
	if c.ShiftCapacityHours <= 0 {
		return fmt.Errorf("shift_capacity_hours must be positive")
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("window_days must be positive")
	}
	if c.SupportTaskHours <= 0 {
		return fmt.Errorf("support_task_hours must be positive")
	}
	if c.CraneTaskHours <= 0 {
		return fmt.Errorf("crane_task_hours must be positive")
	}
	if c.CraneThresholdHours <= 0 {
		return fmt.Errorf("crane_threshold_hours must be positive")
	}
	return nil
}
