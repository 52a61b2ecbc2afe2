package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Sim.Repulsion != 1500 {
		t.Errorf("Sim.Repulsion = %v, want 1500", cfg.Sim.Repulsion)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Export.Width != 1200 {
		t.Errorf("Export.Width = %v, want 1200", cfg.Export.Width)
	}
}

func TestLoadConfig_ProjectFile(t *testing.T) {
	// Create temp directory for test
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	// Create .dialogviz directory and config file
	if err := os.MkdirAll(ProjectConfigDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	configContent := `
sim:
  repulsion: 2200
  link_distance: 320
theme: parchment
seed: 42
export:
  width: 1600
  max_ticks: 800
`
	configPath := filepath.Join(ProjectConfigDir, ProjectConfigFile)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Check values from file
	if cfg.Sim.Repulsion != 2200 {
		t.Errorf("Sim.Repulsion = %v, want 2200", cfg.Sim.Repulsion)
	}
	if cfg.Sim.LinkDistance != 320 {
		t.Errorf("Sim.LinkDistance = %v, want 320", cfg.Sim.LinkDistance)
	}
	if cfg.Theme != "parchment" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "parchment")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Export.Width != 1600 {
		t.Errorf("Export.Width = %v, want 1600", cfg.Export.Width)
	}
	if cfg.Export.MaxTicks != 800 {
		t.Errorf("Export.MaxTicks = %v, want 800", cfg.Export.MaxTicks)
	}

	// Values the file does not mention keep their defaults.
	if cfg.Export.Height != 800 {
		t.Errorf("Export.Height = %v, want default 800", cfg.Export.Height)
	}
	if cfg.Sim.CollideRadius != 80 {
		t.Errorf("Sim.CollideRadius = %v, want default 80", cfg.Sim.CollideRadius)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
sim:
  repulsion: 3100
theme: light
`
	configPath := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", configPath)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Sim.Repulsion != 3100 {
		t.Errorf("Sim.Repulsion = %v, want 3100", cfg.Sim.Repulsion)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "light")
	}
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if _, err := LoadConfig(v); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadConfig_ExplicitOverridesProject(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	defer func() { _ = os.Chdir(oldWd) }()

	if err := os.MkdirAll(ProjectConfigDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	projectPath := filepath.Join(ProjectConfigDir, ProjectConfigFile)
	if err := os.WriteFile(projectPath, []byte("theme: light\nseed: 7\n"), 0644); err != nil {
		t.Fatalf("write project config failed: %v", err)
	}

	explicitPath := filepath.Join(tmpDir, "override.yaml")
	if err := os.WriteFile(explicitPath, []byte("theme: parchment\n"), 0644); err != nil {
		t.Fatalf("write explicit config failed: %v", err)
	}

	v := viper.New()
	v.Set("config", explicitPath)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Theme != "parchment" {
		t.Errorf("Theme = %q, want the explicit file to win", cfg.Theme)
	}
	// Settings the explicit file omits still come from the project file.
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7 from the project file", cfg.Seed)
	}
}

func TestLoadConfig_ClampsRepulsion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"too low", "sim:\n  repulsion: 5\n", 100},
		{"too high", "sim:\n  repulsion: 99999\n", 5000},
		{"in range", "sim:\n  repulsion: 2000\n", 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config failed: %v", err)
			}

			v := viper.New()
			v.Set("config", configPath)

			cfg, err := LoadConfig(v)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if cfg.Sim.Repulsion != tt.want {
				t.Errorf("Sim.Repulsion = %v, want %v", cfg.Sim.Repulsion, tt.want)
			}
		})
	}
}

func TestLoadConfig_ViperSettingOverride(t *testing.T) {
	v := viper.New()
	v.Set("theme", "light")
	v.Set("sim.repulsion", 4000)

	cfg, err := LoadConfig(v)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "light")
	}
	if cfg.Sim.Repulsion != 4000 {
		t.Errorf("Sim.Repulsion = %v, want 4000", cfg.Sim.Repulsion)
	}
}
