package config

import (
	"testing"

	"github.com/npratt/dialogviz/internal/sim"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestDefaultSimConfig(t *testing.T) {
	cfg := Default()

	if cfg.Sim.Repulsion != 1500 {
		t.Errorf("Sim.Repulsion = %v, want 1500", cfg.Sim.Repulsion)
	}
	if cfg.Sim.LinkDistance != 250 {
		t.Errorf("Sim.LinkDistance = %v, want 250", cfg.Sim.LinkDistance)
	}
	if cfg.Sim.CenterStrength != 0.01 {
		t.Errorf("Sim.CenterStrength = %v, want 0.01", cfg.Sim.CenterStrength)
	}
	if cfg.Sim.CollideRadius != 80 {
		t.Errorf("Sim.CollideRadius = %v, want 80", cfg.Sim.CollideRadius)
	}
}

func TestDefaultExportConfig(t *testing.T) {
	cfg := Default()

	if cfg.Export.Width != 1200 {
		t.Errorf("Export.Width = %v, want 1200", cfg.Export.Width)
	}
	if cfg.Export.Height != 800 {
		t.Errorf("Export.Height = %v, want 800", cfg.Export.Height)
	}
	if cfg.Export.MaxTicks != 500 {
		t.Errorf("Export.MaxTicks = %v, want 500", cfg.Export.MaxTicks)
	}
}

func TestDefaultThemeAndSeed(t *testing.T) {
	cfg := Default()

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (time-seeded)", cfg.Seed)
	}
}

func TestDefaultLogRotation(t *testing.T) {
	cfg := Default()

	if cfg.LogRotation.MaxSizeMB != 100 {
		t.Errorf("LogRotation.MaxSizeMB = %d, want 100", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups != 3 {
		t.Errorf("LogRotation.MaxBackups = %d, want 3", cfg.LogRotation.MaxBackups)
	}
	if cfg.LogRotation.MaxAgeDays != 7 {
		t.Errorf("LogRotation.MaxAgeDays = %d, want 7", cfg.LogRotation.MaxAgeDays)
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
}

func TestSimConfigExpansion(t *testing.T) {
	cfg := Default()
	cfg.Sim.Repulsion = 2500
	cfg.Sim.LinkDistance = 300

	sc := cfg.SimConfig()

	if sc.Repulsion != 2500 {
		t.Errorf("Repulsion = %v, want 2500", sc.Repulsion)
	}
	if sc.LinkDistance != 300 {
		t.Errorf("LinkDistance = %v, want 300", sc.LinkDistance)
	}

	// Knobs the config does not expose keep the solver defaults.
	def := sim.DefaultConfig()
	if sc.LinkStrength != def.LinkStrength {
		t.Errorf("LinkStrength = %v, want %v", sc.LinkStrength, def.LinkStrength)
	}
	if sc.AlphaDecay != def.AlphaDecay {
		t.Errorf("AlphaDecay = %v, want %v", sc.AlphaDecay, def.AlphaDecay)
	}
	if sc.VelocityDecay != def.VelocityDecay {
		t.Errorf("VelocityDecay = %v, want %v", sc.VelocityDecay, def.VelocityDecay)
	}
}

func TestClampRepulsion(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"below minimum", 50, sim.MinRepulsion},
		{"at minimum", sim.MinRepulsion, sim.MinRepulsion},
		{"in range", 1500, 1500},
		{"at maximum", sim.MaxRepulsion, sim.MaxRepulsion},
		{"above maximum", 9000, sim.MaxRepulsion},
		{"negative", -10, sim.MinRepulsion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRepulsion(tt.input); got != tt.want {
				t.Errorf("ClampRepulsion(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
