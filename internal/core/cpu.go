package core

import "fmt"

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a simulated single core. It owns the simulation clock and records
// every slice it executes, in order.
type CPU struct {
	clock           int
	utilizationTime int
	gantt           []Interval
}

func NewCPU() *CPU {
	return &CPU{gantt: make([]Interval, 0)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// Execute runs p for duration time units starting at the current clock.
// A non-positive duration would stall the simulation, so it panics.
func (c *CPU) Execute(p Process, duration int) Interval {
	if duration <= 0 {
		panic(fmt.Sprintf("cpu: non-positive slice %d for process %q at t=%d", duration, p.ID, c.clock))
	}
	interval := Interval{Process: p, StartTime: c.clock, EndTime: c.clock + duration}
	c.gantt = append(c.gantt, interval)
	c.clock = interval.EndTime
	c.utilizationTime += duration
	return interval
}

// IdleUntil moves the clock forward over a gap in which nothing is ready.
func (c *CPU) IdleUntil(t int) {
	if t < c.clock {
		panic(fmt.Sprintf("cpu: clock cannot move backwards from %d to %d", c.clock, t))
	}
	c.clock = t
}

func (c *CPU) Gantt() []Interval {
	return c.gantt
}

// Metric reports the makespan and how much of it was spent busy or idle.
func (c *CPU) Metric() CpuMetric {
	var total int
	if n := len(c.gantt); n > 0 {
		total = c.gantt[n-1].EndTime
	}
	return CpuMetric{
		TotalTime:       total,
		UtilizationTime: c.utilizationTime,
		IdleTime:        total - c.utilizationTime,
	}
}
