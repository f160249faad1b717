package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	IMDB    IMDBConfig    `mapstructure:"imdb"`
	Heatmap HeatmapConfig `mapstructure:"heatmap"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// IMDBConfig holds the scrape target and request profile configuration.
type IMDBConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	AcceptLanguage string `mapstructure:"accept_language"`
	Timeout        int    `mapstructure:"timeout"` // seconds
}

// HeatmapConfig holds rendering configuration.
type HeatmapConfig struct {
	// ScaleFloor sets the lower bound of the color scale: "auto" uses the
	// minimum present rating, a numeric string fixes the floor (e.g. "7.0").
	ScaleFloor string `mapstructure:"scale_floor"`
	OutputDir  string `mapstructure:"output_dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		IMDB: IMDBConfig{
			BaseURL:        "https://www.imdb.com",
			UserAgent:      defaultUserAgent,
			AcceptLanguage: "en-US,en;q=0.9",
			Timeout:        20,
		},
		Heatmap: HeatmapConfig{
			ScaleFloor: "auto",
			OutputDir:  ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file settings
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.imdb-heatmap")
	}

	// Environment variable settings
	v.SetEnvPrefix("HEATMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults + env vars
	}

	// Unmarshal into struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Heatmap.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	def := Default()

	// IMDb defaults
	v.SetDefault("imdb.base_url", def.IMDB.BaseURL)
	v.SetDefault("imdb.user_agent", def.IMDB.UserAgent)
	v.SetDefault("imdb.accept_language", def.IMDB.AcceptLanguage)
	v.SetDefault("imdb.timeout", def.IMDB.Timeout)

	// Heatmap defaults
	v.SetDefault("heatmap.scale_floor", def.Heatmap.ScaleFloor)
	v.SetDefault("heatmap.output_dir", def.Heatmap.OutputDir)

	// Logging defaults
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.path", "")
}

// Validate checks that the scale floor is either "auto" or numeric.
func (c *HeatmapConfig) Validate() error {
	if _, _, err := c.Floor(); err != nil {
		return err
	}
	return nil
}

// Floor returns the configured color-scale floor. auto is true when the
// scale should start at the minimum present rating.
func (c *HeatmapConfig) Floor() (value float64, auto bool, err error) {
	if strings.EqualFold(c.ScaleFloor, "auto") || c.ScaleFloor == "" {
		return 0, true, nil
	}

	value, err = strconv.ParseFloat(c.ScaleFloor, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid heatmap.scale_floor %q: %w", c.ScaleFloor, err)
	}

	return value, false, nil
}
