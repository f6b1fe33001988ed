// Package config loads scheduler settings from defaults, an optional YAML
// file and SCHEDSIM_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

const envPrefix = "SCHEDSIM"

type SchedulerConfig struct {
	Addr           string
	Policy         string
	TimeQuantum    int64
	PriorityLevels int
	// MaxTicks caps the simulated horizon of API requests; 0 disables it.
	MaxTicks int64
}

// Params returns the scheduling knobs of the config.
func (c *SchedulerConfig) Params() scheduler.Params {
	return scheduler.Params{TimeQuantum: c.TimeQuantum, PriorityLevels: c.PriorityLevels}
}

// Load reads the configuration. An empty path skips the file.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":9095")
	v.SetDefault("scheduler.policy", "all")
	v.SetDefault("scheduler.time_quantum", 2)
	v.SetDefault("scheduler.priority_levels", 3)
	v.SetDefault("server.max_ticks", 1000000)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading config %s", err, path)
		}
	}

	config := &SchedulerConfig{
		Addr:           v.GetString("server.addr"),
		Policy:         v.GetString("scheduler.policy"),
		TimeQuantum:    v.GetInt64("scheduler.time_quantum"),
		PriorityLevels: v.GetInt("scheduler.priority_levels"),
		MaxTicks:       v.GetInt64("server.max_ticks"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the policy name and the RR/MLFQ parameter ranges.
func (c *SchedulerConfig) Validate() error {
	if c.Policy != "all" {
		if _, err := scheduler.ParsePolicy(c.Policy); err != nil {
			return err
		}
	}
	if c.TimeQuantum < 1 {
		return fmt.Errorf("%w: time quantum must be >= 1, got %d", scheduler.ErrInvalidParameter, c.TimeQuantum)
	}
	if c.PriorityLevels < scheduler.MinPriorityLevels || c.PriorityLevels > scheduler.MaxPriorityLevels {
		return fmt.Errorf("%w: priority levels must be in [%d,%d], got %d", scheduler.ErrInvalidParameter,
			scheduler.MinPriorityLevels, scheduler.MaxPriorityLevels, c.PriorityLevels)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max ticks must be >= 0, got %d", scheduler.ErrInvalidParameter, c.MaxTicks)
	}
	return nil
}
