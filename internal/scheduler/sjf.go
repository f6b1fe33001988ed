package scheduler

// SJF is non-preemptive shortest-job-first. Whenever the CPU frees up the
// arrived process with the smallest burst runs to completion; ties go to
// the earlier arrival, then the lower id.
func SJF(processes []Process) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	return runNonPreemptive(newSimulation(processes), PolicySJF, func(a, b *task) bool {
		if a.BurstDuration != b.BurstDuration {
			return a.BurstDuration < b.BurstDuration
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ProcessID < b.ProcessID
	}), nil
}

// Priority is non-preemptive priority scheduling: the arrived process with
// the lowest Priority value runs to completion; ties go to the earlier
// arrival, then the lower id.
func Priority(processes []Process) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	return runNonPreemptive(newSimulation(processes), PolicyPriority, func(a, b *task) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ProcessID < b.ProcessID
	}), nil
}

func runNonPreemptive(s *simulation, policy Policy, less func(a, b *task) bool) *Result {
	var ready []*task
	for !s.finished() {
		ready = append(ready, s.admit()...)
		if len(ready) == 0 {
			if !s.idle() {
				break
			}
			continue
		}
		i := pick(ready, less)
		t := ready[i]
		ready = remove(ready, i)
		s.run(t, t.remaining, 0)
	}
	return s.result(policy)
}
