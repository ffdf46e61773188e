package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of a diplopod session.
//
// Width and Height size the coarse grid used by consumables and walls. The
// creature moves on a fine grid Scale times denser.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`

	FoodAmount    int `yaml:"food_amount"`     // initial food stock
	PoisonAmount  int `yaml:"poison_amount"`   // initial poison stock
	PoisonPerFood int `yaml:"poison_per_food"` // poison added with every regular restock
	MaxPoison     int `yaml:"max_poison"`      // 0 means unbounded

	SpecialSpawnInterval int  `yaml:"special_spawn_interval"`
	AntidoteImmunity     int  `yaml:"antidote_immunity"`
	GrowthMin            int  `yaml:"growth_min"` // superfood growth, inclusive
	GrowthMax            int  `yaml:"growth_max"` // superfood growth, exclusive
	AntidoteWanders      bool `yaml:"antidote_wanders"`

	StepInterval time.Duration `yaml:"step_interval"`
	ImmunityTick time.Duration `yaml:"immunity_tick"`

	Seed uint64 `yaml:"seed"` // 0 picks a time based seed
}

func Default() Config {
	return Config{
		Width:                39,
		Height:               21,
		Scale:                2,
		FoodAmount:           16,
		PoisonAmount:         17,
		PoisonPerFood:        1,
		MaxPoison:            120,
		SpecialSpawnInterval: 16,
		AntidoteImmunity:     10,
		GrowthMin:            2,
		GrowthMax:            10,
		AntidoteWanders:      true,
		StepInterval:         75 * time.Millisecond,
		ImmunityTick:         time.Second,
	}
}

var ErrInvalid = errors.New("invalid config")

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(filePath string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that an empty path yields the defaults.
func LoadOrDefault(filePath string) (Config, error) {
	if filePath == "" {
		return Default(), nil
	}
	return Load(filePath)
}

func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalid, c.Scale)
	case c.FoodAmount < 0 || c.PoisonAmount < 0 || c.PoisonPerFood < 0 || c.MaxPoison < 0:
		return fmt.Errorf("%w: consumable amounts must not be negative", ErrInvalid)
	case c.SpecialSpawnInterval < 1:
		return fmt.Errorf("%w: special_spawn_interval must be positive, got %d", ErrInvalid, c.SpecialSpawnInterval)
	case c.AntidoteImmunity < 0:
		return fmt.Errorf("%w: antidote_immunity must not be negative, got %d", ErrInvalid, c.AntidoteImmunity)
	case c.GrowthMin < 1 || c.GrowthMax <= c.GrowthMin:
		return fmt.Errorf("%w: growth range [%d,%d) is empty", ErrInvalid, c.GrowthMin, c.GrowthMax)
	case c.StepInterval <= 0 || c.ImmunityTick <= 0:
		return fmt.Errorf("%w: tick intervals must be positive", ErrInvalid)
	}
	return nil
}

// ArenaWidth and ArenaHeight are the fine grid bounds, wall ring included.
func (c Config) ArenaWidth() int  { return (c.Width + 1) * c.Scale }
func (c Config) ArenaHeight() int { return (c.Height + 1) * c.Scale }
