package schedulers

import "os-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs every process to completion in order of
// arrival. Processes arriving at the same time keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) core.Outcome {
	s := newSimulation(processes)

	for _, i := range arrivalOrder(processes) {
		if arrival := processes[i].ArrivalTime; arrival > s.clock() {
			s.cpu.IdleUntil(arrival)
		}
		s.run(i, s.remaining[i])
	}

	return s.outcome()
}
