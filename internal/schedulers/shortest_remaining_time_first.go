package schedulers

import "os-scheduler/internal/core"

// ScheduleShortestRemainingTimeFirst always runs the process with the least
// work left. An arriving process preempts the runner when its whole burst is
// strictly shorter than what the runner would still have left at that moment.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.Outcome {
	s := newSimulation(processes)

	for !s.done() {
		i, ok := s.pick(func(candidate, best int) bool {
			return s.remaining[candidate] < s.remaining[best]
		})
		if !ok {
			s.idleUntilNextArrival()
			continue
		}

		slice := s.sliceUntilPreempted(i, func(arriving, untilArrival int) bool {
			return processes[arriving].BurstTime < s.remaining[i]-untilArrival
		})
		s.run(i, slice)
	}

	return s.outcome()
}
