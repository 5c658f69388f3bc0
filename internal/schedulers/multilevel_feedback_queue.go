package schedulers

import "os-scheduler/internal/core"

// ScheduleMultilevelFeedbackQueue keeps one FIFO queue per entry of
// levelsTimeQuantum. New processes enter the top level; a process that uses up
// its level's quantum without finishing drops one level, and the last level
// keeps cycling. The highest non-empty level is always served first, but a
// running slice is never cut short.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, levelsTimeQuantum []int) core.Outcome {
	s := newSimulation(processes)
	incoming := newArrivals(processes)
	levels := make([][]int, len(levelsTimeQuantum))

	for !s.done() {
		levels[0] = append(levels[0], incoming.until(s.clock())...)

		level := highestNonEmptyLevel(levels)
		if level == -1 {
			s.idleUntilNextArrival()
			continue
		}

		current := levels[level][0]
		levels[level] = levels[level][1:]
		s.run(current, min(s.remaining[current], levelsTimeQuantum[level]))

		levels[0] = append(levels[0], incoming.until(s.clock())...)
		if s.remaining[current] > 0 {
			next := min(level+1, len(levels)-1)
			levels[next] = append(levels[next], current)
		}
	}

	return s.outcome()
}

func highestNonEmptyLevel(levels [][]int) int {
	for i := range levels {
		if len(levels[i]) > 0 {
			return i
		}
	}
	return -1
}
