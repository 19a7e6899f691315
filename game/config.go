package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable game parameters. The zero-flag defaults
// reproduce the classic tuning; a YAML file can override any field.
type Config struct {
	// ScreenWidth is the window width in pixels. The playfield spans the
	// whole window.
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels.
	ScreenHeight int `yaml:"screen_height"`

	// ThrustAccel is the ship's forward acceleration in pixels per second
	// per second.
	ThrustAccel float64 `yaml:"thrust_accel"`

	// AngularSpeed is the ship's turn rate in radians per second.
	AngularSpeed float64 `yaml:"angular_speed"`

	// BulletSpeed is the muzzle speed in pixels per second, added on top
	// of the ship's own velocity.
	BulletSpeed float64 `yaml:"bullet_speed"`

	// BulletLifetime is how long a bullet flies before expiring, seconds.
	BulletLifetime float64 `yaml:"bullet_lifetime"`

	// FireCooldown is the minimum time between shots, seconds.
	FireCooldown float64 `yaml:"fire_cooldown"`

	// Lives is the number of ships per session.
	Lives int `yaml:"lives"`

	// InitialAsteroids is the asteroid count of the first wave; each
	// following wave adds one.
	InitialAsteroids int `yaml:"initial_asteroids"`

	// WaveCooldown is the pause between clearing the field and the next
	// wave, seconds.
	WaveCooldown float64 `yaml:"wave_cooldown"`

	// Invincibility is the grace period after a respawn, seconds.
	Invincibility float64 `yaml:"invincibility"`

	// Seed for the game's randomness source. Zero picks a time-based
	// seed. Set from the command line, not from the file.
	Seed int64 `yaml:"-"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      800,
		ScreenHeight:     600,
		ThrustAccel:      100.0,
		AngularSpeed:     4.0,
		BulletSpeed:      400.0,
		BulletLifetime:   1.1,
		FireCooldown:     0.25,
		Lives:            3,
		InitialAsteroids: 4,
		WaveCooldown:     3.0,
		Invincibility:    3.0,
	}
}

// LoadConfig returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.BulletSpeed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %v", c.BulletSpeed)
	}
	if c.Lives <= 0 {
		return fmt.Errorf("lives must be positive, got %d", c.Lives)
	}
	if c.InitialAsteroids <= 0 {
		return fmt.Errorf("initial asteroid count must be positive, got %d", c.InitialAsteroids)
	}
	return nil
}

// Bounds returns the playfield bounds as a vector.
func (c Config) Bounds() V2 {
	return V2{X: float64(c.ScreenWidth), Y: float64(c.ScreenHeight)}
}
