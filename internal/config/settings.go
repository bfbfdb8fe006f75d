package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables read by Load.
const (
	EnvLogLevel   = "TAGTIDY_LOG_LEVEL"
	EnvNoColor    = "TAGTIDY_NO_COLOR"
	EnvCheckDiscs = "TAGTIDY_CHECK_DISCS"
	EnvSummary    = "TAGTIDY_SUMMARY"
)

// Settings holds all configuration options.
type Settings struct {
	// Logging
	LogLevel string

	// Output settings
	NoColor bool
	Summary bool

	// Cleaning settings
	CheckDiscs bool
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:   "warn",
		NoColor:    false,
		Summary:    true,
		CheckDiscs: true,
	}
}

// Load reads settings from the environment, after loading envFile into it.
//
// A missing envFile is not an error; pass "" to skip it.
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	settings := DefaultSettings()

	if v, ok := lookup(EnvLogLevel); ok {
		settings.LogLevel = strings.ToLower(v)
	}

	var err error
	if settings.NoColor, err = lookupBool(EnvNoColor, settings.NoColor); err != nil {
		return nil, err
	}
	if settings.Summary, err = lookupBool(EnvSummary, settings.Summary); err != nil {
		return nil, err
	}
	if settings.CheckDiscs, err = lookupBool(EnvCheckDiscs, settings.CheckDiscs); err != nil {
		return nil, err
	}

	if _, err := settings.Level(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Level returns the logrus level named by LogLevel.
func (s *Settings) Level() (log.Level, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return level, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func lookupBool(key string, fallback bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
