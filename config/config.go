// Package config loads planner settings.
//
// Precedence, lowest first: Default, a YAML file (Load), the process
// environment (ApplyEnv, optionally primed from a .env file with
// LoadEnvFile), and finally whatever the caller sets explicitly (CLI flags).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/patrol/patrol"
	"github.com/katalvlaran/patrol/tsp"
)

// Sentinel errors.
var (
	// ErrParse indicates a file or variable that cannot be decoded.
	ErrParse = errors.New("config: parse error")
	// ErrInvalid indicates a decoded value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATROL_"

// Duration is a time.Duration that reads "2.8s"-style strings or a number
// of milliseconds.
type Duration time.Duration

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON accepts a duration string or milliseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: duration %q", ErrParse, s)
		}
		*d = Duration(v)
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("%w: duration %s", ErrParse, b)
	}
	*d = Duration(time.Duration(ms * float64(time.Millisecond)))
	return nil
}

// Config is the flat, serializable planner configuration.
type Config struct {
	TimeLimit    Duration `json:"time_limit"`
	Seed         int64    `json:"seed"`
	T0           float64  `json:"t0"`
	T1           float64  `json:"t1"`
	BatchSize    int      `json:"batch_size"`
	EarlyReject  float64  `json:"early_reject"`
	Workers      int      `json:"workers"`
	Strategy     string   `json:"strategy"`
	Algorithm    string   `json:"algorithm"`
	MaxProposals int      `json:"max_proposals"`
	Restarts     int      `json:"restarts"`
	Verify       bool     `json:"verify"`
}

// Default returns the tuned defaults.
func Default() Config {
	return Config{
		TimeLimit:   Duration(patrol.DefaultTimeLimit),
		T0:          tsp.DefaultT0,
		T1:          tsp.DefaultT1,
		BatchSize:   tsp.DefaultBatchSize,
		EarlyReject: tsp.DefaultEarlyReject,
		Workers:     runtime.NumCPU(),
		Strategy:    patrol.StrategyAnneal.String(),
		Algorithm:   tsp.AlgoAuto.String(),
		Restarts:    1,
		Verify:      true,
	}
}

// Load returns Default overlaid with the YAML (or JSON) file at path.
// Keys missing from the file keep their default. An empty path returns
// Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return cfg, nil
}

// LoadEnvFile copies the variables of a .env file into the process
// environment. Variables already set win. A missing file is not an error
// when optional is true.
func LoadEnvFile(path string, optional bool) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from PATROL_* variables that are set and
// non-empty.
func (c *Config) ApplyEnv() error {
	setters := []struct {
		key string
		set func(string) error
	}{
		{"TIME_LIMIT", func(v string) error {
			d, err := time.ParseDuration(v)
			c.TimeLimit = Duration(d)
			return err
		}},
		{"SEED", func(v string) (err error) { c.Seed, err = strconv.ParseInt(v, 10, 64); return }},
		{"T0", func(v string) (err error) { c.T0, err = strconv.ParseFloat(v, 64); return }},
		{"T1", func(v string) (err error) { c.T1, err = strconv.ParseFloat(v, 64); return }},
		{"BATCH_SIZE", func(v string) (err error) { c.BatchSize, err = strconv.Atoi(v); return }},
		{"EARLY_REJECT", func(v string) (err error) { c.EarlyReject, err = strconv.ParseFloat(v, 64); return }},
		{"WORKERS", func(v string) (err error) { c.Workers, err = strconv.Atoi(v); return }},
		{"STRATEGY", func(v string) error { c.Strategy = v; return nil }},
		{"ALGORITHM", func(v string) error { c.Algorithm = v; return nil }},
		{"MAX_PROPOSALS", func(v string) (err error) { c.MaxProposals, err = strconv.Atoi(v); return }},
		{"RESTARTS", func(v string) (err error) { c.Restarts, err = strconv.Atoi(v); return }},
		{"VERIFY", func(v string) (err error) { c.Verify, err = strconv.ParseBool(v); return }},
	}
	for _, s := range setters {
		v := strings.TrimSpace(os.Getenv(EnvPrefix + s.key))
		if v == "" {
			continue
		}
		if err := s.set(v); err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrParse, EnvPrefix, s.key, v)
		}
	}
	return nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.TimeLimit <= 0:
		return fmt.Errorf("%w: time_limit %v", ErrInvalid, time.Duration(c.TimeLimit))
	case !(c.T1 > 0) || c.T0 < c.T1:
		return fmt.Errorf("%w: t0=%g t1=%g", ErrInvalid, c.T0, c.T1)
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch_size %d", ErrInvalid, c.BatchSize)
	case !(c.EarlyReject > 0):
		return fmt.Errorf("%w: early_reject %g", ErrInvalid, c.EarlyReject)
	case c.MaxProposals < 0:
		return fmt.Errorf("%w: max_proposals %d", ErrInvalid, c.MaxProposals)
	case c.Restarts < 0:
		return fmt.Errorf("%w: restarts %d", ErrInvalid, c.Restarts)
	}
	if _, err := patrol.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := tsp.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// PlannerOptions validates c and converts it to patrol.Options. The
// logger is left nil for the caller to set.
func (c Config) PlannerOptions() (patrol.Options, error) {
	if err := c.Validate(); err != nil {
		return patrol.Options{}, err
	}
	strategy, _ := patrol.ParseStrategy(c.Strategy)
	algo, _ := tsp.ParseAlgorithm(c.Algorithm)

	opts := patrol.DefaultOptions()
	opts.TimeLimit = time.Duration(c.TimeLimit)
	opts.Workers = c.Workers
	opts.Strategy = strategy
	opts.Verify = c.Verify
	opts.Solver = tsp.Options{
		Algo:         algo,
		Seed:         c.Seed,
		T0:           c.T0,
		T1:           c.T1,
		BatchSize:    c.BatchSize,
		EarlyReject:  c.EarlyReject,
		MaxProposals: c.MaxProposals,
		Restarts:     c.Restarts,
	}
	return opts, nil
}

// YAML renders c as YAML.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
