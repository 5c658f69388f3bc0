package schedulers

import "os-scheduler/internal/core"

// SchedulePriority runs the most urgent available process (lowest priority
// value) to completion.
func SchedulePriority(processes []core.Process) core.Outcome {
	return runToCompletion(processes, func(candidate, best int) bool {
		return processes[candidate].PriorityValue() < processes[best].PriorityValue()
	})
}
