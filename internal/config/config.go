// Package config provides Viper-based configuration loading for the adventure engine.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GuardAllDirections is the GameConfig.GuardedDirection value that applies the
// lock and enemy checks to every exit instead of a single direction.
const GuardAllDirections = "*"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// OutputPaths lists zap sinks. Game text owns stdout, so the default is stderr.
	OutputPaths []string `mapstructure:"output_paths"`
}

// WorldConfig locates and describes the world data source.
type WorldConfig struct {
	// Path is the world file to load.
	Path string `mapstructure:"path"`
	// Format is "json", "yaml" or "ini". Empty means infer from the file extension.
	Format string `mapstructure:"format"`
	// ValidateExits rejects worlds whose exits target unknown rooms.
	ValidateExits bool `mapstructure:"validate_exits"`
}

// GameConfig holds rule parameters for the game manager.
type GameConfig struct {
	// WinningRoom is the room id that ends the game with an escape.
	WinningRoom string `mapstructure:"winning_room"`
	// GuardedDirection is the exit direction blocked by locks and enemies.
	// GuardAllDirections applies the checks to every exit.
	GuardedDirection string `mapstructure:"guarded_direction"`
}

// ConsoleConfig holds terminal frontend settings.
type ConsoleConfig struct {
	// Prompt is written, without a newline, before each input read.
	Prompt string `mapstructure:"prompt"`
	// WrapWidth word-wraps output at this many columns. 0 disables wrapping.
	WrapWidth int `mapstructure:"wrap_width"`
	// Color enables ANSI highlighting of danger and escape lines.
	Color bool `mapstructure:"color"`
	// Banner prints the load and welcome lines before the first turn.
	Banner bool `mapstructure:"banner"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	World   WorldConfig   `mapstructure:"world"`
	Game    GameConfig    `mapstructure:"game"`
	Console ConsoleConfig `mapstructure:"console"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateWorld(c.World); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConsole(c.Console); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateWorld(w WorldConfig) error {
	var errs []string
	if w.Path == "" {
		errs = append(errs, "world.path must not be empty")
	}
	validFormats := map[string]bool{"": true, "json": true, "yaml": true, "ini": true}
	if !validFormats[w.Format] {
		errs = append(errs, fmt.Sprintf("world.format must be one of [json, yaml, ini] or empty, got %q", w.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.WinningRoom == "" {
		errs = append(errs, "game.winning_room must not be empty")
	}
	if strings.TrimSpace(g.GuardedDirection) == "" {
		errs = append(errs, "game.guarded_direction must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateConsole(c ConsoleConfig) error {
	if c.WrapWidth < 0 {
		return fmt.Errorf("console.wrap_width must be >= 0, got %d", c.WrapWidth)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ADVENTURE_ prefix
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Game.GuardedDirection = NormalizeDirection(cfg.Game.GuardedDirection)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NormalizeDirection trims and lower-cases a direction so it compares equal to
// parsed player input, which is always lower-case.
func NormalizeDirection(dir string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(dir))
}

// Defaults returns a Viper instance holding only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_paths", []string{"stderr"})

	v.SetDefault("world.path", "game.json")
	v.SetDefault("world.format", "")
	v.SetDefault("world.validate_exits", true)

	v.SetDefault("game.winning_room", "freedom")
	v.SetDefault("game.guarded_direction", "north")

	v.SetDefault("console.prompt", "> ")
	v.SetDefault("console.wrap_width", 0)
	v.SetDefault("console.color", false)
	v.SetDefault("console.banner", true)
}
