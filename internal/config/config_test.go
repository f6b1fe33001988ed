package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, &SchedulerConfig{Addr: ":9095", Policy: "all", TimeQuantum: 2, PriorityLevels: 3, MaxTicks: 1000000}, c)
	assert.Equal(t, scheduler.Params{TimeQuantum: 2, PriorityLevels: 3}, c.Params())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  addr: \":8080\"\n  max_ticks: 500\nscheduler:\n  policy: mlfq\n  time_quantum: 4\n  priority_levels: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{Addr: ":8080", Policy: "mlfq", TimeQuantum: 4, PriorityLevels: 5, MaxTicks: 500}, c)

	t.Setenv("SCHEDSIM_SCHEDULER_TIME_QUANTUM", "7")
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.TimeQuantum)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SCHEDSIM_SCHEDULER_PRIORITY_LEVELS", "9")
	_, err := Load("")
	assert.ErrorIs(t, err, scheduler.ErrInvalidParameter)

	t.Setenv("SCHEDSIM_SCHEDULER_PRIORITY_LEVELS", "3")
	t.Setenv("SCHEDSIM_SCHEDULER_POLICY", "lottery")
	_, err = Load("")
	assert.ErrorIs(t, err, scheduler.ErrUnknownPolicy)

	t.Setenv("SCHEDSIM_SCHEDULER_POLICY", "all")
	t.Setenv("SCHEDSIM_SERVER_MAX_TICKS", "-1")
	_, err = Load("")
	assert.ErrorIs(t, err, scheduler.ErrInvalidParameter)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
