package schedulers

import (
	"errors"
	"fmt"
	"strings"
)

type Algorithm string

const (
	FirstComeFirstServe     Algorithm = "fcfs"
	ShortestJobFirst        Algorithm = "sjf"
	RoundRobin              Algorithm = "roundrobin"
	Priority                Algorithm = "priority"
	PreemptivePriority      Algorithm = "preemptive-priority"
	ShortestRemainingTime   Algorithm = "srtf"
	MultilevelFeedbackQueue Algorithm = "mlfq"
)

// Algorithms lists every supported policy in a fixed order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	RoundRobin,
	Priority,
	PreemptivePriority,
	ShortestRemainingTime,
	MultilevelFeedbackQueue,
}

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported scheduling algorithm")
	ErrInvalidTimeQuantum   = errors.New("invalid time quantum")
	ErrInvalidProcess       = errors.New("invalid process")
)

var aliases = map[string]Algorithm{
	"rr":          RoundRobin,
	"round-robin": RoundRobin,
	"pp":          PreemptivePriority,
	"sjf-np":      ShortestJobFirst,
}

// ParseAlgorithm resolves a selector name (case-insensitive, with a few short
// aliases such as "rr") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	for _, a := range Algorithms {
		if string(a) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Preemptive reports whether the policy can interrupt a running process.
func (a Algorithm) Preemptive() bool {
	switch a {
	case RoundRobin, PreemptivePriority, ShortestRemainingTime, MultilevelFeedbackQueue:
		return true
	}
	return false
}

func (a Algorithm) UsesPriority() bool {
	return a == Priority || a == PreemptivePriority
}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	case Priority:
		return "Priority"
	case PreemptivePriority:
		return "Preemptive priority"
	case ShortestRemainingTime:
		return "Shortest-remaining-time-first"
	case MultilevelFeedbackQueue:
		return "Multilevel feedback queue"
	}
	return string(a)
}
