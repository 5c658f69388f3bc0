package schedulers

import "os-scheduler/internal/core"

// arrivals hands out processes as the clock passes their arrival time.
// Processes admitted by the same call come back in input order.
type arrivals struct {
	processes []core.Process
	admitted  []bool
}

func newArrivals(processes []core.Process) *arrivals {
	return &arrivals{processes: processes, admitted: make([]bool, len(processes))}
}

// until returns every process that has arrived by clock and was not handed
// out before.
func (a *arrivals) until(clock int) []int {
	var ready []int
	for i, p := range a.processes {
		if !a.admitted[i] && p.ArrivalTime <= clock {
			a.admitted[i] = true
			ready = append(ready, i)
		}
	}
	return ready
}

// ScheduleRoundRobin serves a FIFO ready queue in slices of at most
// timeQuantum. Processes that arrive while a slice runs are queued before the
// preempted process goes back to the tail.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.Outcome {
	s := newSimulation(processes)
	incoming := newArrivals(processes)
	readyQueue := make([]int, 0, len(processes))

	for !s.done() {
		readyQueue = append(readyQueue, incoming.until(s.clock())...)
		if len(readyQueue) == 0 {
			s.idleUntilNextArrival()
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]
		s.run(current, min(s.remaining[current], timeQuantum))

		readyQueue = append(readyQueue, incoming.until(s.clock())...)
		if s.remaining[current] > 0 {
			readyQueue = append(readyQueue, current)
		}
	}

	return s.outcome()
}
