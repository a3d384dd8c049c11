package config

import "fmt"

// LoggingConfig defines settings for application log output.
type LoggingConfig struct {
	// Level sets the minimum log level: "debug", "info", "warn" or "error".
	Level string `json:"level"`
	// Component overrides the component tag attached to every log line.
	Component string `json:"component"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Component == "" {
		c.Component = "maintcore"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown log level %s", c.Level)
	}
}
