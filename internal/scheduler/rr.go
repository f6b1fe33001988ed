package scheduler

import "container/list"

// RR is round robin with a fixed quantum over a single FIFO ready queue.
//
// A process whose quantum expires is re-queued before the arrivals of the
// same instant are admitted, so it runs ahead of a process arriving exactly
// when it was preempted.
func RR(processes []Process, quantum int64) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	if err := validateQuantum(quantum); err != nil {
		return nil, err
	}
	s := newSimulation(processes)

	queue := list.New()
	for !s.finished() {
		for _, t := range s.admit() {
			queue.PushBack(t)
		}
		if queue.Len() == 0 {
			if !s.idle() {
				break
			}
			continue
		}
		t := queue.Remove(queue.Front()).(*task)
		// one slice per dispatch, see DESIGN.md "Merging vs. quantum bound"
		s.run(t, quantum, 0)
		if t.remaining > 0 {
			queue.PushBack(t)
		}
	}
	return s.result(PolicyRR), nil
}
