package schedulers

import (
	"fmt"
	"sort"

	"os-scheduler/internal/core"
)

// simulation is the scratch state of one run, indexed by the position of
// each process in the caller's input. Nothing here outlives the run.
type simulation struct {
	processes  []core.Process
	remaining  []int
	firstStart []int // -1 until first dispatch
	cpu        *core.CPU
	results    []core.Result
}

func newSimulation(processes []core.Process) *simulation {
	s := &simulation{
		processes:  processes,
		remaining:  make([]int, len(processes)),
		firstStart: make([]int, len(processes)),
		cpu:        core.NewCPU(),
		results:    make([]core.Result, 0, len(processes)),
	}
	for i, p := range processes {
		s.remaining[i] = p.BurstTime
		s.firstStart[i] = -1
	}
	return s
}

func (s *simulation) done() bool {
	return len(s.results) == len(s.processes)
}

func (s *simulation) clock() int {
	return s.cpu.Clock()
}

func (s *simulation) available(i int) bool {
	return s.remaining[i] > 0 && s.processes[i].ArrivalTime <= s.clock()
}

// pick scans available processes in input order and keeps the first one for
// which no later candidate is strictly better. Ties therefore always go to
// the process that appears earliest in the input.
func (s *simulation) pick(better func(candidate, best int) bool) (int, bool) {
	best := -1
	for i := range s.processes {
		if !s.available(i) {
			continue
		}
		if best == -1 || better(i, best) {
			best = i
		}
	}
	return best, best != -1
}

// idleUntilNextArrival jumps the clock to the earliest arrival among the
// unfinished processes.
func (s *simulation) idleUntilNextArrival() {
	next := -1
	for i, p := range s.processes {
		if s.remaining[i] > 0 && (next == -1 || p.ArrivalTime < next) {
			next = p.ArrivalTime
		}
	}
	if next == -1 || next <= s.clock() {
		panic(fmt.Sprintf("schedulers: nothing ready at t=%d but %d processes unfinished", s.clock(), len(s.processes)-len(s.results)))
	}
	s.cpu.IdleUntil(next)
}

// run executes process i for duration units and completes it when its
// remaining time reaches zero.
func (s *simulation) run(i, duration int) {
	if duration > s.remaining[i] {
		panic(fmt.Sprintf("schedulers: slice %d exceeds remaining time %d of process %q", duration, s.remaining[i], s.processes[i].ID))
	}
	if s.firstStart[i] == -1 {
		s.firstStart[i] = s.clock()
	}
	interval := s.cpu.Execute(s.processes[i], duration)
	s.remaining[i] -= duration
	if s.remaining[i] == 0 {
		s.results = append(s.results, core.NewResult(s.processes[i], s.firstStart[i], interval.EndTime))
	}
}

// pending returns the unfinished processes that have not arrived yet, in
// ascending arrival order with ties kept in input order.
func (s *simulation) pending() []int {
	out := make([]int, 0)
	for i, p := range s.processes {
		if s.remaining[i] > 0 && p.ArrivalTime > s.clock() {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return s.processes[out[a]].ArrivalTime < s.processes[out[b]].ArrivalTime
	})
	return out
}

// sliceUntilPreempted returns how long process i may run before one of the
// pending arrivals takes the CPU from it. Every pending process is checked on
// its own, so several processes sharing an arrival time are all considered.
// preempts is given the arriving process and the time from now to its arrival.
func (s *simulation) sliceUntilPreempted(i int, preempts func(arriving, untilArrival int) bool) int {
	slice := s.remaining[i]
	for _, j := range s.pending() {
		untilArrival := s.processes[j].ArrivalTime - s.clock()
		if untilArrival >= slice {
			break
		}
		if preempts(j, untilArrival) {
			return untilArrival
		}
	}
	return slice
}

func (s *simulation) outcome() core.Outcome {
	return core.Outcome{
		Gantt:   s.cpu.Gantt(),
		Results: s.results,
		Metric:  s.cpu.Metric(),
	}
}

// arrivalOrder returns process indexes sorted by arrival, ties in input order.
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return processes[order[a]].ArrivalTime < processes[order[b]].ArrivalTime
	})
	return order
}
