// Package config resolves integrator and CLI settings from defaults, an
// optional YAML file, a .env file and BSM_* environment variables, in that
// order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bcdannyboy/bsm/logging"
	"github.com/bcdannyboy/bsm/probability"
)

const (
	CDFIntegral = "integral"
	CDFErf      = "erf"

	// MaxPrecision is the most decimal places a rendered value may carry.
	MaxPrecision = 16
)

// Config is the application configuration.
type Config struct {
	Integration IntegrationConfig `yaml:"integration"`
	// CDFMethod selects the normal CDF strategy: integral or erf.
	CDFMethod string         `yaml:"cdf_method"`
	Output    OutputConfig   `yaml:"output"`
	Logging   logging.Config `yaml:"logging"`
}

// IntegrationConfig parameterizes the integral normal CDF.
type IntegrationConfig struct {
	LowerBound       float64 `yaml:"lower_bound"`
	SubdivisionLimit int     `yaml:"subdivision_limit"`
	Points           int     `yaml:"points"`
	AbsTol           float64 `yaml:"abs_tol"`
	RelTol           float64 `yaml:"rel_tol"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	in := probability.NewAdaptiveLegendre()
	return Config{
		Integration: IntegrationConfig{
			LowerBound:       probability.DefaultLowerBound,
			SubdivisionLimit: probability.DefaultSubdivisionLimit,
			Points:           in.Points,
			AbsTol:           in.AbsTol,
			RelTol:           in.RelTol,
		},
		CDFMethod: CDFIntegral,
		Output: OutputConfig{
			Format:    "text",
			Precision: 4,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty), a .env file in the working directory if present, and the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	floats := map[string]*float64{
		"BSM_LOWER_BOUND": &c.Integration.LowerBound,
		"BSM_ABS_TOL":     &c.Integration.AbsTol,
		"BSM_REL_TOL":     &c.Integration.RelTol,
	}
	for key, dst := range floats {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = f
		}
	}

	ints := map[string]*int{
		"BSM_SUBDIVISION_LIMIT": &c.Integration.SubdivisionLimit,
		"BSM_POINTS":            &c.Integration.Points,
		"BSM_PRECISION":         &c.Output.Precision,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
	}

	strs := map[string]*string{
		"BSM_CDF_METHOD": &c.CDFMethod,
		"BSM_FORMAT":     &c.Output.Format,
		"BSM_LOG_LEVEL":  &c.Logging.Level,
		"BSM_LOG_FORMAT": &c.Logging.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = strings.ToLower(strings.TrimSpace(v))
		}
	}
	return nil
}

// Validate rejects settings the valuation pipeline cannot run with.
func (c Config) Validate() error {
	in := c.Integration
	switch {
	case math.IsNaN(in.LowerBound) || math.IsInf(in.LowerBound, 0) || in.LowerBound >= 0:
		return fmt.Errorf("integration.lower_bound must be finite and negative, got %g", in.LowerBound)
	case in.SubdivisionLimit < 0:
		return fmt.Errorf("integration.subdivision_limit must not be negative, got %d", in.SubdivisionLimit)
	case in.Points < 1:
		return fmt.Errorf("integration.points must be at least 1, got %d", in.Points)
	case !(in.AbsTol > 0) || !(in.RelTol > 0):
		return fmt.Errorf("integration tolerances must be positive, got abs=%g rel=%g", in.AbsTol, in.RelTol)
	case c.CDFMethod != CDFIntegral && c.CDFMethod != CDFErf:
		return fmt.Errorf("unknown cdf_method %q", c.CDFMethod)
	case c.Output.Format != "text" && c.Output.Format != "json":
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	case c.Output.Precision < 0 || c.Output.Precision > MaxPrecision:
		return fmt.Errorf("output.precision must be within 0..%d, got %d", MaxPrecision, c.Output.Precision)
	}
	return nil
}

// CDF builds the normal CDF the configuration selects.
func (c Config) CDF() probability.CDF {
	if c.CDFMethod == CDFErf {
		return probability.ErfCDF{}
	}
	return probability.NormalCDF{
		Lower: c.Integration.LowerBound,
		Limit: c.Integration.SubdivisionLimit,
		Integrator: probability.AdaptiveLegendre{
			Points: c.Integration.Points,
			AbsTol: c.Integration.AbsTol,
			RelTol: c.Integration.RelTol,
		},
	}
}
