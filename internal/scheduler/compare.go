package scheduler

import (
	"fmt"
	"sync"
)

// Comparison pairs a policy with the result it produced.
type Comparison struct {
	Policy Policy
	Result *Result
}

// Compare runs every policy over the same processes concurrently and
// returns the results in the order the policies were given. With no
// policies it compares the five canonical ones.
func Compare(processes []Process, params Params, policies ...Policy) ([]Comparison, error) {
	if len(policies) == 0 {
		policies = Policies()
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	var (
		wg   sync.WaitGroup
		out  = make([]Comparison, len(policies))
		errs = make([]error, len(policies))
	)
	for i, p := range policies {
		wg.Add(1)
		go func(i int, p Policy) {
			defer wg.Done()
			r, err := Run(p, processes, params)
			out[i] = Comparison{Policy: p, Result: r}
			errs[i] = err
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policies[i], err)
		}
	}
	return out, nil
}
