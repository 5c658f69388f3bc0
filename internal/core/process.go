package core

// Process is one schedulable unit of work. It is never mutated by a
// simulation; remaining time lives in the scheduler's scratch state.
type Process struct {
	ID          string
	Name        string
	ArrivalTime int
	BurstTime   int
	// Priority is optional; lower is more urgent. nil counts as 0.
	Priority *int
}

func (p Process) PriorityValue() int {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// Interval is one uninterrupted slice of CPU time given to a process.
type Interval struct {
	Process   Process
	StartTime int
	EndTime   int
}

func (i Interval) Duration() int {
	return i.EndTime - i.StartTime
}

type Result struct {
	Process        Process
	StartTime      int // first dispatch
	EndTime        int // completion
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// NewResult derives the timing metrics of a process that first ran at start
// and completed at end.
func NewResult(p Process, start, end int) Result {
	turnaround := end - p.ArrivalTime
	return Result{
		Process:        p,
		StartTime:      start,
		EndTime:        end,
		WaitingTime:    turnaround - p.BurstTime,
		TurnaroundTime: turnaround,
		ResponseTime:   start - p.ArrivalTime,
	}
}

// Outcome is everything a single simulation run produces.
type Outcome struct {
	Gantt   []Interval
	Results []Result
	Metric  CpuMetric
}
