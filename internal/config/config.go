// Package config decodes the gig-matcher configuration from viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/spigell/gig-matcher/internal/scoring"
)

var ErrConfiguration = errors.New("invalid configuration")

type Config struct {
	// MandatoryQualifications is the catalog of qualifications a worker must hold
	// whenever a job asks for them.
	MandatoryQualifications []string        `mapstructure:"mandatory-qualifications" json:"mandatory_qualifications"`
	Scoring                 scoring.Weights `mapstructure:"scoring" json:"scoring"`
	WorkersFile             string          `mapstructure:"workers-file" json:"workers_file"`
	JobsFile                string          `mapstructure:"jobs-file" json:"jobs_file"`
	MetricsFile             string          `mapstructure:"metrics-file" json:"metrics_file,omitempty"`
	Concurrency             int             `mapstructure:"concurrency" json:"concurrency"`
	Limit                   int             `mapstructure:"limit" json:"limit"`
	MinScore                float64         `mapstructure:"min-score" json:"min_score"`
	Exclude                 *Exclude        `mapstructure:"exclude" json:"exclude,omitempty"`
}

type Exclude struct {
	Employers []string `mapstructure:"employers" json:"employers"`
}

// Default returns a config with the production scoring weights and nothing else set.
func Default() *Config {
	return &Config{Scoring: scoring.DefaultWeights()}
}

// Load decodes v on top of Default, so a partial scoring block keeps the remaining defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if v == nil {
		return cfg, nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is required", ErrConfiguration)
	}

	names := 0
	for _, name := range c.MandatoryQualifications {
		if strings.TrimSpace(name) != "" {
			names++
		}
	}
	if names == 0 {
		return fmt.Errorf("%w: mandatory-qualifications must list at least one qualification", ErrConfiguration)
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("%w: scoring: %w", ErrConfiguration, err)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrConfiguration, c.Concurrency)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrConfiguration, c.Limit)
	}
	if math.IsNaN(c.MinScore) || math.IsInf(c.MinScore, 0) {
		return fmt.Errorf("%w: min-score must be a finite number", ErrConfiguration)
	}

	return nil
}

// ExcludedEmployers returns the configured employer ids to drop before ranking.
func (c *Config) ExcludedEmployers() []string {
	if c == nil || c.Exclude == nil {
		return nil
	}
	return c.Exclude.Employers
}
