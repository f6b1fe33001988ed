package scheduler

import "container/list"

// MLFQ is a multi-level feedback queue with levels FIFO queues. Level k
// (0 is the most urgent) runs each dispatch for at most quantum<<k ticks.
//
// Arrivals always enter level 0. A process that uses its whole quantum
// without finishing is demoted one level, clamped to the lowest; anything
// else re-enters its current level at the tail. Levels never go back up.
func MLFQ(processes []Process, quantum int64, levels int) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	if err := validateLevels(quantum, levels); err != nil {
		return nil, err
	}
	s := newSimulation(processes)

	queues := make([]*list.List, levels)
	for i := range queues {
		queues[i] = list.New()
	}

	for !s.finished() {
		for _, t := range s.admit() {
			queues[0].PushBack(t)
		}
		level := highestNonEmpty(queues)
		if level < 0 {
			if !s.idle() {
				break
			}
			continue
		}

		t := queues[level].Remove(queues[level].Front()).(*task)
		slice := quantum << level
		ran := s.run(t, slice, level)
		if t.remaining == 0 {
			continue
		}
		if ran == slice && level < levels-1 {
			t.level = level + 1
		}
		queues[t.level].PushBack(t)
	}
	return s.result(PolicyMLFQ), nil
}

func highestNonEmpty(queues []*list.List) int {
	for i, q := range queues {
		if q.Len() > 0 {
			return i
		}
	}
	return -1
}
