// Package config loads planning configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
	"github.com/Tubbz-alt/project-planning-for-you-track/internal/scheduler"
)

// Config defines the scheduling parameters and contributor roster.
type Config struct {
	Scheduling   SchedulingConfig    `yaml:"scheduling"`
	Contributors []ContributorConfig `yaml:"contributors"`
}

type SchedulingConfig struct {
	MinutesPerRegularWeek int   `yaml:"minutes_per_regular_week"`
	QuantumMs             int64 `yaml:"quantum_ms"`
	MinActivityDuration   int64 `yaml:"min_activity_duration"` // in quanta
}

type ContributorConfig struct {
	ID             string `yaml:"id"`
	MinutesPerWeek int    `yaml:"minutes_per_week"`
	NumMembers     int    `yaml:"num_members"`
}

// Load reads configuration from an optional YAML file (PLANNING_CONFIG_PATH)
// and environment variables. File values override defaults; environment
// variables override the file.
func Load() (Config, error) {
	cfg := Config{
		Scheduling: SchedulingConfig{
			MinutesPerRegularWeek: scheduler.DefaultMinutesPerRegularWeek,
			QuantumMs:             scheduler.DefaultQuantumMs,
			MinActivityDuration:   1,
		},
	}

	if path := os.Getenv("PLANNING_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PLANNING_WEEK_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PLANNING_WEEK_MINUTES: %w", err)
		}
		cfg.Scheduling.MinutesPerRegularWeek = minutes
	}
	if v := os.Getenv("PLANNING_QUANTUM_MS"); v != "" {
		quantum, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PLANNING_QUANTUM_MS: %w", err)
		}
		cfg.Scheduling.QuantumMs = quantum
	}
	if v := os.Getenv("PLANNING_MIN_ACTIVITY_DURATION"); v != "" {
		dur, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PLANNING_MIN_ACTIVITY_DURATION: %w", err)
		}
		cfg.Scheduling.MinActivityDuration = dur
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Options converts the configuration into scheduler options anchored at the
// given prediction start.
func (c Config) Options(predictionStartMs int64) scheduler.Options {
	opts := scheduler.Options{
		MinutesPerRegularWeek: c.Scheduling.MinutesPerRegularWeek,
		QuantumMs:             c.Scheduling.QuantumMs,
		MinActivityDuration:   c.Scheduling.MinActivityDuration,
		PredictionStartMs:     predictionStartMs,
	}
	for _, cc := range c.Contributors {
		opts.Contributors = append(opts.Contributors, domain.Contributor{
			ID:             cc.ID,
			MinutesPerWeek: cc.MinutesPerWeek,
			NumMembers:     cc.NumMembers,
		})
	}
	return opts.WithDefaults()
}
