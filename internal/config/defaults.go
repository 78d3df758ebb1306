// Package config provides configuration loading and defaults for devfolio.
package config

import "github.com/blackwell-systems/devfolio/internal/scoring"

// DefaultConfigDir is the default location for devfolio configuration.
const DefaultConfigDir = "~/.config/devfolio"

// DefaultDBName is the filename of the snapshot archive.
const DefaultDBName = "devfolio.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultScoring holds the default report settings.
var DefaultScoring = Scoring{
	TopN:        5,
	MaxSelected: scoring.DefaultCalibration().MaxSelected,
	Legend: Legend{
		Enabled:      false,
		MinStars:     10000,
		MinFollowers: 5000,
		Floor:        90,
	},
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
