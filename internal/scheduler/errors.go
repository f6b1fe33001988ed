package scheduler

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyInput       = errors.New("no processes to schedule")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrInvalidParameter = errors.New("invalid scheduling parameter")
	ErrUnknownPolicy    = errors.New("unknown scheduling policy")
)

const (
	MinPriorityLevels = 2
	MaxPriorityLevels = 5
)

func validateProcesses(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	seen := make(map[int64]struct{}, len(processes))
	for i, p := range processes {
		switch {
		case p.ProcessID <= 0:
			return fmt.Errorf("%w: process #%d has non-positive id %d", ErrInvalidProcess, i, p.ProcessID)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidProcess, p.ProcessID, p.ArrivalTime)
		case p.BurstDuration < 1:
			return fmt.Errorf("%w: process %d has non-positive burst %d", ErrInvalidProcess, p.ProcessID, p.BurstDuration)
		}
		if _, dup := seen[p.ProcessID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidProcess, p.ProcessID)
		}
		seen[p.ProcessID] = struct{}{}
	}
	_, err := Horizon(processes)
	return err
}

// Horizon is an upper bound on the clock of any policy: the latest arrival
// plus every burst. It fails when that bound does not fit in an int64.
func Horizon(processes []Process) (int64, error) {
	var horizon int64
	for _, p := range processes {
		if p.ArrivalTime > horizon {
			horizon = p.ArrivalTime
		}
	}
	for _, p := range processes {
		if p.BurstDuration <= 0 {
			continue
		}
		if p.BurstDuration > math.MaxInt64-horizon {
			return 0, fmt.Errorf("%w: total burst from tick %d overflows the clock at process %d",
				ErrInvalidProcess, horizon, p.ProcessID)
		}
		horizon += p.BurstDuration
	}
	return horizon, nil
}

func validateQuantum(quantum int64) error {
	if quantum < 1 {
		return fmt.Errorf("%w: time quantum must be >= 1, got %d", ErrInvalidParameter, quantum)
	}
	return nil
}

func validateLevels(quantum int64, levels int) error {
	if err := validateQuantum(quantum); err != nil {
		return err
	}
	if levels < MinPriorityLevels || levels > MaxPriorityLevels {
		return fmt.Errorf("%w: priority levels must be in [%d,%d], got %d",
			ErrInvalidParameter, MinPriorityLevels, MaxPriorityLevels, levels)
	}
	// the lowest level runs quantum<<(levels-1) ticks
	if quantum > math.MaxInt64>>(levels-1) {
		return fmt.Errorf("%w: time quantum %d overflows at level %d", ErrInvalidParameter, quantum, levels-1)
	}
	return nil
}
