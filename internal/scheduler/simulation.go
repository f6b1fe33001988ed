package scheduler

import "sort"

// task is the private, mutable working copy of one Process.
type task struct {
	Process
	remaining  int64
	level      int
	readySince int64
	waited     int64
	started    bool
	firstStart int64
	completion int64
}

// simulation owns all state of one scheduler call. Nothing in it is shared
// with the caller or with other calls.
type simulation struct {
	// arrivals holds every task sorted by (ArrivalTime, ProcessID); next
	// indexes the first one not yet admitted.
	arrivals []*task
	next     int
	now      int64
	done     int
	// coalesce extends the last slice instead of starting a new one when
	// the same process keeps running.
	coalesce bool
	timeline []TimeSlice
}

func newSimulation(processes []Process) *simulation {
	s := &simulation{arrivals: make([]*task, len(processes))}
	for i, p := range processes {
		s.arrivals[i] = &task{
			Process:    p,
			remaining:  p.BurstDuration,
			readySince: p.ArrivalTime,
		}
	}
	sort.SliceStable(s.arrivals, func(i, j int) bool {
		a, b := s.arrivals[i], s.arrivals[j]
		if a.ArrivalTime == b.ArrivalTime {
			return a.ProcessID < b.ProcessID
		}
		return a.ArrivalTime < b.ArrivalTime
	})
	return s
}

func (s *simulation) finished() bool { return s.done == len(s.arrivals) }

// admit returns, in (arrival, id) order, every task that has arrived by now
// and was not returned before.
func (s *simulation) admit() []*task {
	start := s.next
	for s.next < len(s.arrivals) && s.arrivals[s.next].ArrivalTime <= s.now {
		s.next++
	}
	return s.arrivals[start:s.next]
}

// idle advances the clock to the next arrival, recording the gap. It
// returns false when nothing is left to arrive.
func (s *simulation) idle() bool {
	if s.next >= len(s.arrivals) {
		return false
	}
	if at := s.arrivals[s.next].ArrivalTime; at > s.now {
		s.timeline = append(s.timeline, TimeSlice{PID: IdlePID, Start: s.now, Stop: at})
		s.now = at
	}
	return true
}

// run executes t for ticks starting now and returns how many ticks ran.
func (s *simulation) run(t *task, ticks int64, level int) int64 {
	if ticks > t.remaining {
		ticks = t.remaining
	}
	if !t.started {
		t.started = true
		t.firstStart = s.now
	}
	t.waited += s.now - t.readySince

	slice := TimeSlice{PID: t.ProcessID, Start: s.now, Stop: s.now + ticks, Level: level}
	if last := len(s.timeline) - 1; s.coalesce && last >= 0 &&
		s.timeline[last].PID == slice.PID && s.timeline[last].Stop == slice.Start {
		s.timeline[last].Stop = slice.Stop
	} else {
		s.timeline = append(s.timeline, slice)
	}

	s.now += ticks
	t.remaining -= ticks
	t.readySince = s.now
	if t.remaining == 0 {
		t.completion = s.now
		s.done++
	}
	return ticks
}

func (s *simulation) result(policy Policy) *Result {
	n := len(s.arrivals)
	r := &Result{
		Policy:         policy,
		Timeline:       s.timeline,
		WaitingTime:    make(map[int64]int64, n),
		TurnaroundTime: make(map[int64]int64, n),
		CompletionTime: make(map[int64]int64, n),
		ResponseTime:   make(map[int64]int64, n),
	}
	for _, t := range s.arrivals {
		r.WaitingTime[t.ProcessID] = t.waited
		r.TurnaroundTime[t.ProcessID] = t.completion - t.ArrivalTime
		r.CompletionTime[t.ProcessID] = t.completion
		r.ResponseTime[t.ProcessID] = t.firstStart - t.ArrivalTime
	}
	r.aggregate()
	return r
}

// pick returns the index of the best task in ready according to less.
// ready must not be empty.
func pick(ready []*task, less func(a, b *task) bool) int {
	best := 0
	for i := 1; i < len(ready); i++ {
		if less(ready[i], ready[best]) {
			best = i
		}
	}
	return best
}

func remove(ready []*task, i int) []*task {
	copy(ready[i:], ready[i+1:])
	ready[len(ready)-1] = nil
	return ready[:len(ready)-1]
}
