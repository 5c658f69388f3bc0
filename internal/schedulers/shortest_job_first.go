package schedulers

import "os-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: once picked, a job runs to the
// end even if a shorter one arrives meanwhile.
func ScheduleShortestJobFirst(processes []core.Process) core.Outcome {
	return runToCompletion(processes, func(candidate, best int) bool {
		return processes[candidate].BurstTime < processes[best].BurstTime
	})
}

// runToCompletion drives the non-preemptive policies. better decides whether
// an available process beats the best one found so far.
func runToCompletion(processes []core.Process, better func(candidate, best int) bool) core.Outcome {
	s := newSimulation(processes)

	for !s.done() {
		i, ok := s.pick(better)
		if !ok {
			s.idleUntilNextArrival()
			continue
		}
		s.run(i, s.remaining[i])
	}

	return s.outcome()
}
