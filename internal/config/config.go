// Package config resolves the strsimnet command configuration.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults (Default)
//  2. a TOML file named by STRSIMNET_CONFIG
//  3. a .env file in the working directory, then the process environment
//  4. command-line flags, applied by the caller
//
// TOML format:
//
//	algorithm  = "levenshtein"
//	format     = "gml"
//	min        = "0"
//	max        = "2"
//	workers    = 8
//	log_level  = "info"
//	normalize  = false
//	accelerate = true
//
// Bounds stay strings here because their type depends on the algorithm
// family; see metric.ParseIntBounds and metric.ParseUnitBounds.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/strsimnet/metric"
)

// Environment variable names.
const (
	EnvConfigFile = "STRSIMNET_CONFIG"
	EnvAlgorithm  = "STRSIMNET_ALGORITHM"
	EnvFormat     = "STRSIMNET_FORMAT"
	EnvMin        = "STRSIMNET_MIN"
	EnvMax        = "STRSIMNET_MAX"
	EnvWorkers    = "STRSIMNET_WORKERS"
	EnvLogLevel   = "STRSIMNET_LOG_LEVEL"
	EnvNormalize  = "STRSIMNET_NORMALIZE"
	EnvAccelerate = "STRSIMNET_ACCELERATE"
)

// Output formats.
const (
	FormatGML        = "gml"
	FormatGMLCompact = "gml-compact"
	FormatJSON       = "json"
	FormatCSR        = "csr"
	FormatClusters   = "clusters"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatGML, FormatGMLCompact, FormatJSON, FormatCSR, FormatClusters}

// LogLevels lists the accepted log levels.
var LogLevels = []string{"debug", "info", "warn", "error"}

var (
	// ErrConfigFile indicates an unreadable or malformed TOML file.
	ErrConfigFile = errors.New("config: cannot load config file")

	// ErrInvalid indicates a configuration that fails Validate.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the resolved command configuration.
type Config struct {
	Algorithm  string `toml:"algorithm"`
	Format     string `toml:"format"`
	Min        string `toml:"min"`
	Max        string `toml:"max"`
	Workers    int    `toml:"workers"` // 0 selects GOMAXPROCS
	LogLevel   string `toml:"log_level"`
	Normalize  bool   `toml:"normalize"`
	Accelerate bool   `toml:"accelerate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   FormatGML,
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the optional TOML file and
// the environment. It does not validate; flags usually still apply.
//
// Errors: ErrConfigFile.
func Load() (Config, error) {
	cfg := Default()

	loadDotEnv()

	if path := getEnvString(EnvConfigFile, ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Algorithm = getEnvString(EnvAlgorithm, cfg.Algorithm)
	cfg.Format = getEnvString(EnvFormat, cfg.Format)
	cfg.Min = getEnvString(EnvMin, cfg.Min)
	cfg.Max = getEnvString(EnvMax, cfg.Max)
	cfg.Workers = getEnvInt(EnvWorkers, cfg.Workers)
	cfg.LogLevel = getEnvString(EnvLogLevel, cfg.LogLevel)
	cfg.Normalize = getEnvBool(EnvNormalize, cfg.Normalize)
	cfg.Accelerate = getEnvBool(EnvAccelerate, cfg.Accelerate)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config file %q: %w: %w", path, ErrConfigFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config file %q: unknown key %q: %w", path, undecoded[0].String(), ErrConfigFile)
	}

	return nil
}

// Validate checks names and bounds against the selected algorithm family.
//
// Errors: ErrInvalid, joined with the metric error where one applies.
func (c Config) Validate() error {
	if c.Algorithm == "" {
		return fmt.Errorf("algorithm is required: %w", ErrInvalid)
	}
	alg, err := metric.Lookup(c.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("format %q (want one of %v): %w", c.Format, Formats, ErrInvalid)
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("log level %q (want one of %v): %w", c.LogLevel, LogLevels, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if c.Min == "" || c.Max == "" {
		return fmt.Errorf("min and max distance are required: %w", ErrInvalid)
	}
	switch alg.Family {
	case metric.FamilyInteger:
		_, _, err = metric.ParseIntBounds(c.Min, c.Max)
	case metric.FamilyUnit:
		_, _, err = metric.ParseUnitBounds(c.Min, c.Max)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
