package scheduler

// STCF is preemptive shortest-time-to-completion-first (SRTF). The choice
// is re-made every tick among arrived, unfinished processes: least
// remaining time wins, ties go to the lower id. Consecutive ticks of the
// same process are merged into one slice.
func STCF(processes []Process) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	s := newSimulation(processes)
	s.coalesce = true

	var ready []*task
	for !s.finished() {
		ready = append(ready, s.admit()...)
		if len(ready) == 0 {
			if !s.idle() {
				break
			}
			continue
		}
		i := pick(ready, func(a, b *task) bool {
			if a.remaining != b.remaining {
				return a.remaining < b.remaining
			}
			return a.ProcessID < b.ProcessID
		})
		t := ready[i]
		s.run(t, 1, 0)
		if t.remaining == 0 {
			ready = remove(ready, i)
		}
	}
	return s.result(PolicySTCF), nil
}
