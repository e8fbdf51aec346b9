package willowxr

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config tunes the interaction core. Zero fields take their defaults.
type Config struct {
	// SpawnRadius is the local bounding radius given to spawned objects.
	SpawnRadius float64 `toml:"spawn_radius"`
	// MinScale clamps two-hand scaling from below when positive.
	MinScale float64 `toml:"min_scale"`
	// TickRate is the frame rate assumed by Update when advancing tweens.
	TickRate int `toml:"tick_rate"`
	// ActionDuration is how long controller actions take, in seconds.
	ActionDuration float64 `toml:"action_duration"`
	// RotateStep is the yaw applied by a controller select, in degrees.
	RotateStep float64 `toml:"rotate_step"`
	// LiftStep is the vertical offset applied by a controller squeeze.
	LiftStep float64 `toml:"lift_step"`
	// Debug enables debug logging on the scene.
	Debug bool `toml:"debug"`
}

const (
	defaultSpawnRadius    = 0.05
	defaultTickRate       = 60
	defaultActionDuration = 0.25
	defaultRotateStep     = 45
	defaultLiftStep       = 0.1
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		SpawnRadius:    defaultSpawnRadius,
		TickRate:       defaultTickRate,
		ActionDuration: defaultActionDuration,
		RotateStep:     defaultRotateStep,
		LiftStep:       defaultLiftStep,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SpawnRadius == 0 {
		c.SpawnRadius = d.SpawnRadius
	}
	if c.TickRate == 0 {
		c.TickRate = d.TickRate
	}
	if c.ActionDuration == 0 {
		c.ActionDuration = d.ActionDuration
	}
	if c.RotateStep == 0 {
		c.RotateStep = d.RotateStep
	}
	if c.LiftStep == 0 {
		c.LiftStep = d.LiftStep
	}
	return c
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.SpawnRadius < 0 {
		return fmt.Errorf("%w: spawn_radius %v must be positive", ErrInvalidConfig, c.SpawnRadius)
	}
	if c.MinScale < 0 {
		return fmt.Errorf("%w: min_scale %v must not be negative", ErrInvalidConfig, c.MinScale)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	if c.ActionDuration < 0 {
		return fmt.Errorf("%w: action_duration %v must not be negative", ErrInvalidConfig, c.ActionDuration)
	}
	return nil
}

// ParseConfig decodes TOML, validates it and fills defaults.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}
