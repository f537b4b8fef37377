package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bcdannyboy/bsm/probability"
)

func TestDefaultMatchesPipelineDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Integration.LowerBound != -20 || cfg.Integration.SubdivisionLimit != 50 {
		t.Errorf("unexpected integration defaults %+v", cfg.Integration)
	}

	cdf, ok := cfg.CDF().(probability.NormalCDF)
	if !ok {
		t.Fatalf("default CDF is %T, want probability.NormalCDF", cfg.CDF())
	}
	if cdf.Lower != probability.DefaultLowerBound || cdf.Limit != probability.DefaultSubdivisionLimit {
		t.Errorf("unexpected CDF %+v", cdf)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "bsm.yaml")
	data := []byte(`
integration:
  lower_bound: -30
  subdivision_limit: 120
cdf_method: erf
output:
  format: json
  precision: 6
logging:
  level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Integration.LowerBound != -30 || cfg.Integration.SubdivisionLimit != 120 {
		t.Errorf("integration not loaded: %+v", cfg.Integration)
	}
	if cfg.Integration.Points != 10 {
		t.Errorf("unset points should keep default, got %d", cfg.Integration.Points)
	}
	if cfg.Output.Format != "json" || cfg.Output.Precision != 6 {
		t.Errorf("output not loaded: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging not loaded: %+v", cfg.Logging)
	}
	if _, ok := cfg.CDF().(probability.ErfCDF); !ok {
		t.Errorf("cdf_method erf should select ErfCDF, got %T", cfg.CDF())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BSM_SUBDIVISION_LIMIT", "80")
	t.Setenv("BSM_LOWER_BOUND", "-25.5")
	t.Setenv("BSM_CDF_METHOD", " ERF ")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Integration.SubdivisionLimit != 80 || cfg.Integration.LowerBound != -25.5 {
		t.Errorf("env not applied: %+v", cfg.Integration)
	}
	if cfg.CDFMethod != CDFErf {
		t.Errorf("CDFMethod = %q, want erf", cfg.CDFMethod)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BSM_PRECISION=2\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv sets the variable for the rest of the process.
	t.Cleanup(func() { os.Unsetenv("BSM_PRECISION") })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Precision != 2 {
		t.Errorf("Precision = %d, want 2 from .env", cfg.Output.Precision)
	}
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("integration: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	t.Setenv("BSM_POINTS", "many")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric BSM_POINTS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"positive lower bound", func(c *Config) { c.Integration.LowerBound = 5 }},
		{"negative limit", func(c *Config) { c.Integration.SubdivisionLimit = -1 }},
		{"no points", func(c *Config) { c.Integration.Points = 0 }},
		{"zero tolerance", func(c *Config) { c.Integration.AbsTol = 0 }},
		{"unknown method", func(c *Config) { c.CDFMethod = "table" }},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }},
		{"negative precision", func(c *Config) { c.Output.Precision = -2 }},
		{"precision past float64 digits", func(c *Config) { c.Output.Precision = 1000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
