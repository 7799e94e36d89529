// Package config defines the solver core's configuration surface: app
// identity, logging, metrics, and the numeric tolerances and iteration
// caps each solver family runs under.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	App     AppConfig     `koanf:"app"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Solver  SolverConfig  `koanf:"solver"`
}

// AppConfig holds general application identity.
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
	Debug       bool   `koanf:"debug"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string `koanf:"level"`       // debug, info, warn, error
	Format     string `koanf:"format"`      // json, text
	Output     string `koanf:"output"`      // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`    // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`     // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Port      int    `koanf:"port"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// SolverConfig groups the per-family tolerance and iteration-cap settings.
// Only Transport.MaxIterations reaches a solve (through a Session); the
// other fields are loaded and validated but not applied.
type SolverConfig struct {
	LP          LPConfig          `koanf:"lp"`
	Transport   TransportConfig   `koanf:"transport"`
	Network     NetworkConfig     `koanf:"network"`
}

// LPConfig configures the simplex-based solvers.
type LPConfig struct {
	Epsilon          float64 `koanf:"epsilon"`
	MaxIterations    int     `koanf:"max_iterations"`
	BigM             float64 `koanf:"big_m"`
}

// TransportConfig configures the transportation-problem solvers.
type TransportConfig struct {
	Epsilon       float64 `koanf:"epsilon"`
	MaxIterations int     `koanf:"max_iterations"`
}

// NetworkConfig configures the graph algorithms (shortest path, MST, flow).
type NetworkConfig struct {
	Epsilon       float64 `koanf:"epsilon"`
	MaxIterations int     `koanf:"max_iterations"`
}

// Validate checks the configuration for internal consistency, returning a
// combined error describing every violation found.
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	if c.Solver.LP.Epsilon <= 0 {
		errs = append(errs, "solver.lp.epsilon must be positive")
	}
	if c.Solver.LP.MaxIterations <= 0 {
		errs = append(errs, "solver.lp.max_iterations must be positive")
	}
	if c.Solver.Transport.Epsilon <= 0 {
		errs = append(errs, "solver.transport.epsilon must be positive")
	}
	if c.Solver.Network.Epsilon <= 0 {
		errs = append(errs, "solver.network.epsilon must be positive")
	}

	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		errs = append(errs, fmt.Sprintf("metrics.port must be between 0 and 65535, got %d", c.Metrics.Port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	return nil
}
