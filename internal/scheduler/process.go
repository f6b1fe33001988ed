// Package scheduler simulates classical single-core CPU scheduling
// disciplines over a fixed set of CPU-bound processes.
//
// Every policy takes the caller's processes read-only, runs a closed
// simulation on private working copies and returns a fully populated
// Result, or a nil Result and an error wrapping one of the sentinel errors
// when the input is rejected. Time is a logical tick counter.
package scheduler

// IdlePID is the PID carried by timeline slices during which no process
// was ready. Process ids are positive, so it never collides with one.
const IdlePID int64 = 0

type (
	// Process is the input description of a simulated task.
	Process struct {
		ProcessID     int64 `json:"id"`
		ArrivalTime   int64 `json:"arrival_time"`
		BurstDuration int64 `json:"burst_time"`
		// Priority is only read by the Priority policy. Lower is more urgent.
		Priority int64 `json:"priority"`
	}
	// TimeSlice is one contiguous span of execution or idleness, [Start, Stop).
	TimeSlice struct {
		PID   int64 `json:"pid"`
		Start int64 `json:"start"`
		Stop  int64 `json:"stop"`
		// Level is the MLFQ queue the slice ran at; always 0 for other policies.
		Level int `json:"level"`
	}
)

// Idle reports whether the slice is an idle gap.
func (ts TimeSlice) Idle() bool { return ts.PID == IdlePID }

// Duration returns the number of ticks the slice covers.
func (ts TimeSlice) Duration() int64 { return ts.Stop - ts.Start }
