package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

type MovementConfig struct {
	Speed float32 `mapstructure:"speed" yaml:"speed"`
}

type PhysicsConfig struct {
	FixedStep float64 `mapstructure:"fixed_step" yaml:"fixed_step"`
}

type EngineConfig struct {
	FrameRate     int `mapstructure:"frame_rate" yaml:"frame_rate"`
	MaxFixedSteps int `mapstructure:"max_fixed_steps" yaml:"max_fixed_steps"`
	WindowWidth   int `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight  int `mapstructure:"window_height" yaml:"window_height"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Config is the full runtime configuration for the playground.
type Config struct {
	Movement MovementConfig `mapstructure:"movement" yaml:"movement"`
	Physics  PhysicsConfig  `mapstructure:"physics" yaml:"physics"`
	Engine   EngineConfig   `mapstructure:"engine" yaml:"engine"`
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
}

// SetDefaults registers every default on v. Keys without a default are
// invisible to AutomaticEnv, so every field needs one here.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("movement.speed", 5.0)

	v.SetDefault("physics.fixed_step", 0.02)

	v.SetDefault("engine.frame_rate", 60)
	v.SetDefault("engine.max_fixed_steps", 5)
	v.SetDefault("engine.window_width", 1024)
	v.SetDefault("engine.window_height", 768)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// Default returns the configuration produced by the defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		// defaults are always valid
		panic(err)
	}
	return cfg
}

// Load reads the YAML file at path (if non-empty) and GOPHER2D_* environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Movement.Speed <= 0 {
		return errors.Wrapf(ErrInvalid, "movement.speed must be > 0, got %v", c.Movement.Speed)
	}
	if c.Physics.FixedStep <= 0 {
		return errors.Wrapf(ErrInvalid, "physics.fixed_step must be > 0, got %v", c.Physics.FixedStep)
	}
	if c.Engine.FrameRate <= 0 {
		return errors.Wrapf(ErrInvalid, "engine.frame_rate must be > 0, got %d", c.Engine.FrameRate)
	}
	if c.Engine.MaxFixedSteps < 1 {
		return errors.Wrapf(ErrInvalid, "engine.max_fixed_steps must be >= 1, got %d", c.Engine.MaxFixedSteps)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("GOPHER2D")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
