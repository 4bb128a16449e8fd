package animator

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the animator's tunables. Zero fields take the defaults of
// DefaultConfig.
type Config struct {
	// Duration is the default animation duration.
	Duration time.Duration `yaml:"duration" env:"DURATION"`
	// DiscreteTransitionPoint is the default fraction at which
	// non-interpolable values switch. Zero means 0.5; use DiscreteAtStart
	// to switch on the first tick.
	DiscreteTransitionPoint float64 `yaml:"discreteTransitionPoint" env:"DISCRETE_TRANSITION_POINT"`
	// TickInterval is the period of the scheduler timer.
	TickInterval time.Duration `yaml:"tickInterval" env:"TICK_INTERVAL"`
	// SettleDelay defers actor completion callbacks after the finishing tick.
	SettleDelay time.Duration `yaml:"settleDelay" env:"SETTLE_DELAY"`
	// Curve names the default easing curve (see CurveByName).
	Curve string `yaml:"curve" env:"CURVE"`
	// Debug enables the goroutine ownership check and tick timing logs.
	Debug bool `yaml:"debug" env:"DEBUG"`
	// LogLevel is used by hosts that build their own logger.
	LogLevel string `yaml:"logLevel" env:"LOG_LEVEL"`
}

// envPrefix prefixes every environment variable read by LoadConfig.
const envPrefix = "ANIMATOR_"

// DefaultConfig returns 500ms animations switching discrete values halfway,
// ticking every 10ms and settling 10ms after completion.
func DefaultConfig() Config {
	return Config{
		Duration:                500 * time.Millisecond,
		DiscreteTransitionPoint: 0.5,
		TickInterval:            10 * time.Millisecond,
		SettleDelay:             10 * time.Millisecond,
		LogLevel:                "info",
	}
}

// LoadConfig reads a YAML config file and applies ANIMATOR_* environment
// overrides on top. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports values that cannot drive an animator.
func (c Config) Validate() error {
	switch {
	case c.Duration < 0:
		return fmt.Errorf("%w: negative duration %v", ErrInvalidConfig, c.Duration)
	case c.DiscreteTransitionPoint < 0 || c.DiscreteTransitionPoint > 1:
		return fmt.Errorf("%w: discrete transition point %v outside [0, 1]", ErrInvalidConfig, c.DiscreteTransitionPoint)
	case c.TickInterval < 0:
		return fmt.Errorf("%w: negative tick interval %v", ErrInvalidConfig, c.TickInterval)
	case c.SettleDelay < 0:
		return fmt.Errorf("%w: negative settle delay %v", ErrInvalidConfig, c.SettleDelay)
	}
	if _, ok := CurveByName(c.Curve); !ok {
		return fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, c.Curve)
	}
	return nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	if c.DiscreteTransitionPoint <= 0 {
		c.DiscreteTransitionPoint = def.DiscreteTransitionPoint
	}
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = def.SettleDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
