package scheduler

import (
	"fmt"
	"strings"
)

// Policy names a scheduling discipline.
type Policy string

const (
	PolicyFCFS     Policy = "fcfs"
	PolicySJF      Policy = "sjf"
	PolicySTCF     Policy = "stcf"
	PolicyRR       Policy = "rr"
	PolicyMLFQ     Policy = "mlfq"
	PolicyPriority Policy = "priority"
)

var policyTitles = map[Policy]string{
	PolicyFCFS:     "First-come, first-serve",
	PolicySJF:      "Shortest-job-first",
	PolicySTCF:     "Shortest-time-to-completion-first",
	PolicyRR:       "Round-robin",
	PolicyMLFQ:     "Multi-level feedback queue",
	PolicyPriority: "Priority",
}

var policyAliases = map[string]Policy{
	"fifo": PolicyFCFS,
	"srtf": PolicySTCF,
}

// Title is the human readable name of the policy.
func (p Policy) Title() string {
	if t, ok := policyTitles[p]; ok {
		return t
	}
	return string(p)
}

// Policies returns the five canonical policies in presentation order.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicySTCF, PolicyRR, PolicyMLFQ}
}

// ParsePolicy resolves a case-insensitive policy name or alias.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, ok := policyAliases[name]; ok {
		return p, nil
	}
	if _, ok := policyTitles[Policy(name)]; ok {
		return Policy(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Params carries the policy specific knobs. Policies that do not need a
// field ignore it.
type Params struct {
	TimeQuantum    int64 `json:"time_quantum"`
	PriorityLevels int   `json:"priority_levels"`
}

// Run simulates processes under policy.
func Run(policy Policy, processes []Process, params Params) (*Result, error) {
	switch policy {
	case PolicyFCFS:
		return FCFS(processes)
	case PolicySJF:
		return SJF(processes)
	case PolicySTCF:
		return STCF(processes)
	case PolicyRR:
		return RR(processes, params.TimeQuantum)
	case PolicyMLFQ:
		return MLFQ(processes, params.TimeQuantum, params.PriorityLevels)
	case PolicyPriority:
		return Priority(processes)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
}
