package config

import (
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Game defaults
	if cfg.Game.TimeScale == 0 {
		cfg.Game.TimeScale = shared.DefaultGameTimeScale
	}
	if cfg.Game.LeoLocationID == "" {
		cfg.Game.LeoLocationID = "leo"
	}
	if cfg.Game.TestShipPrefix == "" {
		cfg.Game.TestShipPrefix = "test-"
	}

	// Server defaults
	if cfg.Server.SweepInterval == 0 {
		cfg.Server.SweepInterval = 5 * time.Second
	}
	if cfg.Server.PidFile == "" {
		cfg.Server.PidFile = "frontier-server.pid"
	}
}
