package scheduler

// Result is the outcome of one simulation. All per-process maps are keyed
// by ProcessID.
type Result struct {
	Policy   Policy      `json:"policy"`
	Timeline []TimeSlice `json:"timeline"`

	WaitingTime    map[int64]int64 `json:"waiting_time"`
	TurnaroundTime map[int64]int64 `json:"turnaround_time"`
	CompletionTime map[int64]int64 `json:"completion_time"`
	// ResponseTime is the delay between arrival and first execution.
	ResponseTime map[int64]int64 `json:"response_time"`

	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnaroundTime float64 `json:"average_turnaround_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
}

func (r *Result) aggregate() {
	r.AverageWaitingTime = mean(r.WaitingTime)
	r.AverageTurnaroundTime = mean(r.TurnaroundTime)
	r.AverageResponseTime = mean(r.ResponseTime)
}

func mean(values map[int64]int64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Makespan is the tick at which the last process completed.
func (r *Result) Makespan() int64 {
	if len(r.Timeline) == 0 {
		return 0
	}
	return r.Timeline[len(r.Timeline)-1].Stop
}

// IdleTime is the total number of ticks no process was ready.
func (r *Result) IdleTime() int64 {
	var idle int64
	for _, ts := range r.Timeline {
		if ts.Idle() {
			idle += ts.Duration()
		}
	}
	return idle
}

// Utilization is the busy fraction of the makespan, in [0,1].
func (r *Result) Utilization() float64 {
	span := r.Makespan()
	if span == 0 {
		return 0
	}
	return float64(span-r.IdleTime()) / float64(span)
}

// Throughput is the number of completed processes per tick.
func (r *Result) Throughput() float64 {
	span := r.Makespan()
	if span == 0 {
		return 0
	}
	return float64(len(r.TurnaroundTime)) / float64(span)
}

// Slices returns the timeline slices that belong to pid, in order.
func (r *Result) Slices(pid int64) []TimeSlice {
	var out []TimeSlice
	for _, ts := range r.Timeline {
		if ts.PID == pid {
			out = append(out, ts)
		}
	}
	return out
}
