package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/devfolio/internal/scoring"
)

// Config is the top-level devfolio configuration.
type Config struct {
	Scoring     Scoring             `mapstructure:"scoring"`
	Output      Output              `mapstructure:"output"`
	Archive     Archive             `mapstructure:"archive"`
	Calibration scoring.Calibration `mapstructure:"calibration"`
}

// Scoring holds report-level settings.
type Scoring struct {
	TopN        int    `mapstructure:"top_n"`
	MaxSelected int    `mapstructure:"max_selected"`
	Legend      Legend `mapstructure:"legend"`
}

// Legend configures the optional legend override.
type Legend struct {
	Enabled      bool `mapstructure:"enabled"`
	MinStars     int  `mapstructure:"min_stars"`
	MinFollowers int  `mapstructure:"min_followers"`
	Floor        int  `mapstructure:"floor"`
}

// Rule converts the settings into a scoring rule.
func (l Legend) Rule() scoring.LegendRule {
	return scoring.LegendRule{MinStars: l.MinStars, MinFollowers: l.MinFollowers, Floor: l.Floor}
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Archive locates the snapshot archive.
type Archive struct {
	Path string `mapstructure:"path"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// calibrationDefaults flattens the built-in calibration into the nested map
// viper expects, so a config file only needs the keys it overrides.
func calibrationDefaults() (map[string]any, error) {
	data, err := json.Marshal(scoring.DefaultCalibration())
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cal, err := calibrationDefaults()
	if err != nil {
		return nil, fmt.Errorf("building calibration defaults: %w", err)
	}
	v.SetDefault("calibration", cal)
	v.SetDefault("scoring.top_n", DefaultScoring.TopN)
	v.SetDefault("scoring.legend.enabled", DefaultScoring.Legend.Enabled)
	v.SetDefault("scoring.legend.min_stars", DefaultScoring.Legend.MinStars)
	v.SetDefault("scoring.legend.min_followers", DefaultScoring.Legend.MinFollowers)
	v.SetDefault("scoring.legend.floor", DefaultScoring.Legend.Floor)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("archive.path", filepath.Join(DefaultConfigDir, DefaultDBName))

	v.SetEnvPrefix("DEVFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = filepath.Join(DefaultConfigDir, DefaultConfigFile)
	}
	v.SetConfigFile(expandPath(cfgFile))

	// Missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// scoring.max_selected wins over calibration.max_selected when set.
	if v.IsSet("scoring.max_selected") {
		cfg.Scoring.MaxSelected = v.GetInt("scoring.max_selected")
		cfg.Calibration.MaxSelected = cfg.Scoring.MaxSelected
	} else {
		cfg.Scoring.MaxSelected = cfg.Calibration.MaxSelected
	}
	if err := cfg.Calibration.Validate(); err != nil {
		return nil, fmt.Errorf("calibration: %w", err)
	}

	cfg.Archive.Path = expandPath(cfg.Archive.Path)

	return &cfg, nil
}
