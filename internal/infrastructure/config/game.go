package config

import "time"

// GameConfig holds simulation parameters
type GameConfig struct {
	// Virtual-time multiplier: game seconds per real second
	TimeScale float64 `mapstructure:"time_scale" validate:"gt=0"`

	// Bypass auth in development
	DevSkipAuth bool `mapstructure:"dev_skip_auth"`

	// Location credited by boosts
	LeoLocationID string `mapstructure:"leo_location_id" validate:"required"`

	// Name prefix identifying scratch ships purged at startup
	TestShipPrefix string `mapstructure:"test_ship_prefix"`
}

// ServerConfig holds daemon parameters
type ServerConfig struct {
	// Real-time interval between arrival sweeps
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`

	// PID file location for single-instance locking
	PidFile string `mapstructure:"pid_file"`
}
