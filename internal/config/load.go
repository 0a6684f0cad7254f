package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/bidclock/internal/constants"
	"github.com/mrz1836/bidclock/internal/ctxutil"
	"github.com/mrz1836/bidclock/internal/errors"
)

// newViperInstance creates a new Viper instance with standard bidclock configuration.
// This includes environment variable prefix (BIDCLOCK_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (BIDCLOCK_* prefix)
//  2. .env in the working directory (never overrides variables already set)
//  3. Project config (.bidclock/config.yaml)
//  4. Global config (~/.bidclock/config.yaml)
//  5. Built-in defaults
//
// For CLI flag overrides, use LoadWithOverrides instead.
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	if err := loadDotEnv(constants.DotEnvFileName); err != nil {
		return nil, err
	}

	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Int("game.match_time_minutes", cfg.Game.MatchTimeMinutes).
		Int("game.rounds", cfg.Game.Rounds).
		Float64("game.starting_bid", cfg.Game.StartingBid).
		Dur("timer.tick_interval", cfg.Timer.TickInterval).
		Msg("configuration loaded")

	return cfg, nil
}

// loadDotEnv exports the variables in path into the process environment.
// Variables that are already set keep their value. A missing file is skipped.
func loadDotEnv(path string) error {
	if !fileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	return nil
}

// loadGlobalConfig attempts to load the global config file.
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil || !fileExists(globalConfigPath) {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.bidclock/config.yaml).
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths.
// projectConfigPath has higher priority than globalConfigPath.
// Either path can be empty to skip that level. The .env file is not consulted.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the YAML tag names exactly; they are also the only keys
// AutomaticEnv can resolve during Unmarshal.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("game.match_time_minutes", def.Game.MatchTimeMinutes)
	v.SetDefault("game.rounds", def.Game.Rounds)
	v.SetDefault("game.starting_bid", def.Game.StartingBid)
	v.SetDefault("game.bid_multiplier", def.Game.BidMultiplier)
	v.SetDefault("game.round_exponent", def.Game.RoundExponent)
	v.SetDefault("game.chip_denomination", def.Game.ChipDenomination)

	v.SetDefault("timer.tick_interval", def.Timer.TickInterval.String())

	v.SetDefault("notifications.bell", def.Notifications.Bell)
	v.SetDefault("notifications.events", def.Notifications.Events)
}

// applyOverrides merges non-zero override values into the config.
//
// Notifications.Bell is a bool and cannot be overridden to false here;
// the CLI handles it with cmd.Flags().Changed.
func applyOverrides(cfg, overrides *Config) {
	applyGameOverrides(&cfg.Game, &overrides.Game)

	if overrides.Timer.TickInterval != 0 {
		cfg.Timer.TickInterval = overrides.Timer.TickInterval
	}

	if len(overrides.Notifications.Events) > 0 {
		cfg.Notifications.Events = overrides.Notifications.Events
	}
}

// applyGameOverrides applies game-related overrides to the config.
func applyGameOverrides(cfg, overrides *GameConfig) {
	if overrides.MatchTimeMinutes != 0 {
		cfg.MatchTimeMinutes = overrides.MatchTimeMinutes
	}
	if overrides.Rounds != 0 {
		cfg.Rounds = overrides.Rounds
	}
	if overrides.StartingBid != 0 {
		cfg.StartingBid = overrides.StartingBid
	}
	if overrides.BidMultiplier != 0 {
		cfg.BidMultiplier = overrides.BidMultiplier
	}
	if overrides.RoundExponent != 0 {
		cfg.RoundExponent = overrides.RoundExponent
	}
	if overrides.ChipDenomination != 0 {
		cfg.ChipDenomination = overrides.ChipDenomination
	}
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration and []string conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}
