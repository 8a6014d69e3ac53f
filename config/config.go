package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/digital-rain/constants"
)

// Config holds the two process-wide settings. Read once at startup,
// immutable for the run's lifetime.
type Config struct {
	Density int    // terminal cells per expected concurrent trail
	Charset []rune // glyph pool sampled for trail characters
}

// FromEnv builds the configuration from TRAIL_DENSITY and RAIN_CHARSET,
// falling back to defaults for unset variables. The grid model needs
// every glyph to occupy exactly one terminal cell, so wider runes are
// filtered out of the charset; a set with nothing left is rejected.
func FromEnv() (*Config, error) {
	cfg := &Config{Density: constants.DefaultDensity}

	if v, ok := os.LookupEnv("TRAIL_DENSITY"); ok {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("TRAIL_DENSITY must be a positive integer, got %q", v)
		}
		cfg.Density = d
	}

	charset := constants.DefaultCharset
	if v, ok := os.LookupEnv("RAIN_CHARSET"); ok {
		charset = v
	}
	for _, r := range charset {
		if runewidth.RuneWidth(r) == 1 {
			cfg.Charset = append(cfg.Charset, r)
		}
	}
	if len(cfg.Charset) == 0 {
		return nil, fmt.Errorf("RAIN_CHARSET has no single-width drawable characters")
	}

	return cfg, nil
}
