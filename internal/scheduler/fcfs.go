package scheduler

// FCFS runs processes to completion in (arrival, id) order.
func FCFS(processes []Process) (*Result, error) {
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}
	s := newSimulation(processes)
	for _, t := range s.arrivals {
		if t.ArrivalTime > s.now {
			s.idle()
		}
		// moves the arrival cursor that idle reads
		s.admit()
		s.run(t, t.remaining, 0)
	}
	return s.result(PolicyFCFS), nil
}
