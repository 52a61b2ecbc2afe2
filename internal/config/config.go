// Package config provides configuration types and defaults for dialogviz.
package config

import "github.com/npratt/dialogviz/internal/sim"

// Config holds all configuration for dialogviz.
type Config struct {
	Sim         SimConfig         `yaml:"sim" mapstructure:"sim"`
	Theme       string            `yaml:"theme" mapstructure:"theme"`
	Seed        int64             `yaml:"seed" mapstructure:"seed"` // 0 = time-seeded jitter
	Export      ExportConfig      `yaml:"export" mapstructure:"export"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// SimConfig holds the user-tunable simulation parameters. Repulsion is
// clamped to [100, 5000] at load time so the core never sees an
// out-of-range value.
type SimConfig struct {
	Repulsion      float64 `yaml:"repulsion" mapstructure:"repulsion"`
	LinkDistance   float64 `yaml:"link_distance" mapstructure:"link_distance"`
	CenterStrength float64 `yaml:"center_strength" mapstructure:"center_strength"`
	CollideRadius  float64 `yaml:"collide_radius" mapstructure:"collide_radius"`
}

// ExportConfig holds settings for headless SVG rendering.
type ExportConfig struct {
	Width    float64 `yaml:"width" mapstructure:"width"`
	Height   float64 `yaml:"height" mapstructure:"height"`
	MaxTicks int     `yaml:"max_ticks" mapstructure:"max_ticks"` // safety bound on convergence
}

// PathsConfig holds file paths.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for the viewer debug log rotation
// (lumberjack-based).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Repulsion:      1500,
			LinkDistance:   250,
			CenterStrength: 0.01,
			CollideRadius:  80,
		},
		Theme: "dark",
		Seed:  0,
		Export: ExportConfig{
			Width:    1200,
			Height:   800,
			MaxTicks: 500,
		},
		Paths: PathsConfig{
			Log: ".dialogviz/dialogviz.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// SimConfig expands the user-facing tuning into the simulation's full
// parameter set; knobs the config does not expose keep their defaults.
func (c *Config) SimConfig() sim.Config {
	sc := sim.DefaultConfig()
	sc.Repulsion = c.Sim.Repulsion
	sc.LinkDistance = c.Sim.LinkDistance
	sc.CenterStrength = c.Sim.CenterStrength
	sc.CollideRadius = c.Sim.CollideRadius
	return sc
}

// ClampRepulsion forces r into the valid range.
func ClampRepulsion(r float64) float64 {
	if r < sim.MinRepulsion {
		return sim.MinRepulsion
	}
	if r > sim.MaxRepulsion {
		return sim.MaxRepulsion
	}
	return r
}
