package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg != Default() {
		t.Fatalf("empty path: got %+v, %v", cfg, err)
	}
	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file must fail")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     error
		validate    func(*testing.T, Config)
	}{
		{
			name: "partial file keeps defaults",
			yamlContent: `
width: 20
height: 12
step_interval: 50ms
seed: 99
`,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Width != 20 || cfg.Height != 12 {
					t.Errorf("expected 20x12 grid, got %dx%d", cfg.Width, cfg.Height)
				}
				if cfg.StepInterval != 50*time.Millisecond {
					t.Errorf("expected step interval 50ms, got %v", cfg.StepInterval)
				}
				if cfg.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Seed)
				}
				if cfg.SpecialSpawnInterval != 16 {
					t.Errorf("expected default special interval 16, got %d", cfg.SpecialSpawnInterval)
				}
				if cfg.ImmunityTick != time.Second {
					t.Errorf("expected default immunity tick 1s, got %v", cfg.ImmunityTick)
				}
			},
		},
		{
			name: "full file",
			yamlContent: `
width: 30
height: 15
scale: 3
food_amount: 4
poison_amount: 2
poison_per_food: 0
max_poison: 10
special_spawn_interval: 8
antidote_immunity: 5
growth_min: 3
growth_max: 6
antidote_wanders: false
immunity_tick: 500ms
`,
			validate: func(t *testing.T, cfg Config) {
				if cfg.Scale != 3 || cfg.ArenaWidth() != 93 || cfg.ArenaHeight() != 48 {
					t.Errorf("unexpected arena %dx%d at scale %d", cfg.ArenaWidth(), cfg.ArenaHeight(), cfg.Scale)
				}
				if cfg.AntidoteWanders {
					t.Error("expected antidote_wanders false")
				}
				if cfg.GrowthMin != 3 || cfg.GrowthMax != 6 {
					t.Errorf("unexpected growth range [%d,%d)", cfg.GrowthMin, cfg.GrowthMax)
				}
			},
		},
		{
			name:        "empty growth range",
			yamlContent: "growth_min: 4\ngrowth_max: 4\n",
			wantErr:     ErrInvalid,
		},
		{
			name:        "tiny grid",
			yamlContent: "width: 2\n",
			wantErr:     ErrInvalid,
		},
		{
			name:        "zero interval",
			yamlContent: "special_spawn_interval: 0\n",
			wantErr:     ErrInvalid,
		},
		{
			name:        "negative stock",
			yamlContent: "food_amount: -1\n",
			wantErr:     ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "diplopod.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
