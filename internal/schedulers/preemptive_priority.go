package schedulers

import "os-scheduler/internal/core"

// SchedulePreemptivePriority gives the CPU to the most urgent available
// process and takes it back the moment a strictly more urgent one arrives.
func SchedulePreemptivePriority(processes []core.Process) core.Outcome {
	s := newSimulation(processes)

	for !s.done() {
		i, ok := s.pick(func(candidate, best int) bool {
			return processes[candidate].PriorityValue() < processes[best].PriorityValue()
		})
		if !ok {
			s.idleUntilNextArrival()
			continue
		}

		slice := s.sliceUntilPreempted(i, func(arriving, _ int) bool {
			return processes[arriving].PriorityValue() < processes[i].PriorityValue()
		})
		s.run(i, slice)
	}

	return s.outcome()
}
