package schedulers

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"os-scheduler/internal/core"
)

type Options struct {
	// TimeQuantum is the round robin slice length.
	TimeQuantum int
	// LevelsTimeQuantum holds one slice length per multilevel feedback queue level.
	LevelsTimeQuantum []int
}

// Schedule checks the input and runs one scheduling policy over it. An empty
// process list is not an error and yields an empty outcome.
func Schedule(algorithm Algorithm, processes []core.Process, opts Options) (core.Outcome, error) {
	resolved, err := ParseAlgorithm(string(algorithm))
	if err != nil {
		return core.Outcome{}, err
	}
	if len(processes) == 0 {
		return core.Outcome{Gantt: []core.Interval{}, Results: []core.Result{}}, nil
	}
	if err := ValidateProcesses(processes); err != nil {
		return core.Outcome{}, err
	}

	switch resolved {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case RoundRobin:
		if opts.TimeQuantum <= 0 {
			return core.Outcome{}, fmt.Errorf("%w: %d, must be positive", ErrInvalidTimeQuantum, opts.TimeQuantum)
		}
		return ScheduleRoundRobin(processes, opts.TimeQuantum), nil
	case Priority:
		return SchedulePriority(processes), nil
	case PreemptivePriority:
		return SchedulePreemptivePriority(processes), nil
	case ShortestRemainingTime:
		return ScheduleShortestRemainingTimeFirst(processes), nil
	case MultilevelFeedbackQueue:
		if len(opts.LevelsTimeQuantum) == 0 {
			return core.Outcome{}, fmt.Errorf("%w: multilevel feedback queue needs at least one level", ErrInvalidTimeQuantum)
		}
		for level, q := range opts.LevelsTimeQuantum {
			if q <= 0 {
				return core.Outcome{}, fmt.Errorf("%w: level %d has quantum %d", ErrInvalidTimeQuantum, level, q)
			}
		}
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum), nil
	}
	return core.Outcome{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
}

// ValidateProcesses rejects input the simulation cannot make progress on.
// Nothing is dropped silently.
func ValidateProcesses(processes []core.Process) error {
	seen := make(map[string]int, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process #%d has an empty id", ErrInvalidProcess, i)
		}
		if prev, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: process #%d reuses id %q of process #%d", ErrInvalidProcess, i, p.ID, prev)
		}
		seen[p.ID] = i
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q has burst time %d, must be positive", ErrInvalidProcess, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q has negative arrival time %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
	}
	return nil
}

// Observer is told about every finished run. *metrics.Collector implements it.
type Observer interface {
	ObserveSimulation(algorithm string, processes int, outcome core.Outcome, elapsed time.Duration, err error)
}

// Engine wraps Schedule with configured defaults, logging and metrics.
type Engine struct {
	options  Options
	logger   zerolog.Logger
	observer Observer
}

func NewEngine(options Options, logger zerolog.Logger, observer Observer) *Engine {
	return &Engine{options: options, logger: logger, observer: observer}
}

// Run simulates one algorithm. A timeQuantum of 0 falls back to the
// configured round robin quantum.
func (e *Engine) Run(algorithm Algorithm, processes []core.Process, timeQuantum int) (core.Outcome, error) {
	opts := e.options
	if timeQuantum != 0 {
		opts.TimeQuantum = timeQuantum
	}

	started := time.Now()
	outcome, err := Schedule(algorithm, processes, opts)
	elapsed := time.Since(started)

	if e.observer != nil {
		e.observer.ObserveSimulation(string(algorithm), len(processes), outcome, elapsed, err)
	}
	if err != nil {
		e.logger.Warn().Err(err).Str("algorithm", string(algorithm)).Int("processes", len(processes)).Msg("simulation rejected")
		return core.Outcome{}, err
	}

	e.logger.Debug().
		Str("algorithm", string(algorithm)).
		Int("processes", len(processes)).
		Int("time_quantum", opts.TimeQuantum).
		Int("intervals", len(outcome.Gantt)).
		Int("total_time", outcome.Metric.TotalTime).
		Dur("elapsed", elapsed).
		Msg("simulation finished")
	return outcome, nil
}

// RunAll simulates every supported algorithm on the same input. Runs are
// independent and only share the read-only process list.
func (e *Engine) RunAll(processes []core.Process, timeQuantum int) (map[Algorithm]core.Outcome, error) {
	outcomes := make([]core.Outcome, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for n, algorithm := range Algorithms {
		go func(n int, algorithm Algorithm) {
			defer wg.Done()
			outcomes[n], errs[n] = e.Run(algorithm, processes, timeQuantum)
		}(n, algorithm)
	}
	wg.Wait()

	all := make(map[Algorithm]core.Outcome, len(Algorithms))
	for n, algorithm := range Algorithms {
		if errs[n] != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, errs[n])
		}
		all[algorithm] = outcomes[n]
	}
	return all, nil
}
