package config

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/spigell/gig-matcher/internal/scoring"
)

func loadYAML(t *testing.T, content string) *Config {
	t.Helper()

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		t.Fatalf("reading config: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg := loadYAML(t, `
mandatory-qualifications:
  - Führerschein Klasse B
  - Staplerschein
scoring:
  distance-penalty-per-km: 0.5
workers-file: workers.yaml
jobs-file: jobs.json
concurrency: 4
limit: 10
min-score: 5
exclude:
  employers:
    - e42
`)

	if diff := cmp.Diff([]string{"Führerschein Klasse B", "Staplerschein"}, cfg.MandatoryQualifications); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}

	want := scoring.DefaultWeights()
	want.DistancePenaltyPerKm = 0.5
	if diff := cmp.Diff(want, cfg.Scoring); diff != "" {
		t.Fatalf("expected partial scoring block to keep defaults (-want +got):\n%s", diff)
	}

	if cfg.WorkersFile != "workers.yaml" || cfg.JobsFile != "jobs.json" {
		t.Fatalf("unexpected files: %s %s", cfg.WorkersFile, cfg.JobsFile)
	}
	if cfg.Concurrency != 4 || cfg.Limit != 10 || cfg.MinScore != 5 {
		t.Fatalf("unexpected query options: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"e42"}, cfg.ExcludedEmployers()); diff != "" {
		t.Fatalf("unexpected excluded employers (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadWithoutViper(t *testing.T) {
	t.Parallel()

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scoring != scoring.DefaultWeights() {
		t.Fatalf("expected default weights, got %+v", cfg.Scoring)
	}
	if cfg.ExcludedEmployers() != nil {
		t.Fatalf("expected no excluded employers")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := Default()
		cfg.MandatoryQualifications = []string{"Staplerschein"}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty catalog", mutate: func(c *Config) { c.MandatoryQualifications = nil }},
		{name: "blank catalog names", mutate: func(c *Config) { c.MandatoryQualifications = []string{" ", ""} }},
		{name: "negative weight", mutate: func(c *Config) { c.Scoring.CategoryPoints = -1 }},
		{name: "negative concurrency", mutate: func(c *Config) { c.Concurrency = -2 }},
		{name: "negative limit", mutate: func(c *Config) { c.Limit = -1 }},
		{name: "nan min score", mutate: func(c *Config) { c.MinScore = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
		})
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	var nilCfg *Config
	if err := nilCfg.Validate(); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration for nil config, got %v", err)
	}
}
