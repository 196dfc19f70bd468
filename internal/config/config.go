// Package config holds the runtime settings shared by the CLI and the server.
package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pdrpinto/search/internal/logging"
)

// Config is read from the environment and then overridden by flags.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	// MaxExpansions caps a single search; zero disables the cap.
	MaxExpansions int
	// MaxCells caps the size of boards accepted over HTTP.
	MaxCells     int
	SolveTimeout time.Duration
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     logging.FormatConsole,
		MaxExpansions: 0,
		MaxCells:      250_000,
		SolveTimeout:  10 * time.Second,
	}
}

// Environment variables read by FromEnv.
const (
	EnvAddr          = "PATHFINDER_ADDR"
	EnvPort          = "PORT"
	EnvLogLevel      = "PATHFINDER_LOG_LEVEL"
	EnvLogFormat     = "PATHFINDER_LOG_FORMAT"
	EnvMaxExpansions = "PATHFINDER_MAX_EXPANSIONS"
	EnvMaxCells      = "PATHFINDER_MAX_CELLS"
	EnvSolveTimeout  = "PATHFINDER_SOLVE_TIMEOUT"
)

// FromEnv overlays environment values on Default. lookup is usually os.LookupEnv.
// PORT is honoured when PATHFINDER_ADDR is unset.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if port, ok := lookup(EnvPort); ok && port != "" {
		cfg.Addr = ":" + port
	}
	if addr, ok := lookup(EnvAddr); ok && addr != "" {
		cfg.Addr = addr
	}
	if level, ok := lookup(EnvLogLevel); ok && level != "" {
		cfg.LogLevel = level
	}
	if format, ok := lookup(EnvLogFormat); ok && format != "" {
		cfg.LogFormat = format
	}

	var errs []error
	if v, ok := lookup(EnvMaxExpansions); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxExpansions, err))
		}
		cfg.MaxExpansions = n
	}
	if v, ok := lookup(EnvMaxCells); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxCells, err))
		}
		cfg.MaxCells = n
	}
	if v, ok := lookup(EnvSolveTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSolveTimeout, err))
		}
		cfg.SolveTimeout = d
	}
	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("config: address is empty"))
	}
	if c.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("config: max expansions %d is negative", c.MaxExpansions))
	}
	if c.MaxCells < 2 {
		errs = append(errs, fmt.Errorf("config: max cells %d is below 2", c.MaxCells))
	}
	if c.SolveTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: solve timeout %s must be positive", c.SolveTimeout))
	}
	if _, err := logging.New(io.Discard, c.LogLevel, c.LogFormat); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}
