package schedulers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func proc(name string, arrival, burst int) core.Process {
	return core.Process{ID: name, Name: name, ArrivalTime: arrival, BurstTime: burst}
}

func procP(name string, arrival, burst, priority int) core.Process {
	p := proc(name, arrival, burst)
	p.Priority = &priority
	return p
}

// timeline renders intervals as "name start-end" for readable comparisons.
func timeline(gantt []core.Interval) []string {
	out := make([]string, 0, len(gantt))
	for _, i := range gantt {
		out = append(out, fmt.Sprintf("%s %d-%d", i.Process.Name, i.StartTime, i.EndTime))
	}
	return out
}

func waitingTimes(results []core.Result) map[string]int {
	out := make(map[string]int, len(results))
	for _, r := range results {
		out[r.Process.ID] = r.WaitingTime
	}
	return out
}

func resultFor(t *testing.T, results []core.Result, id string) core.Result {
	t.Helper()
	for _, r := range results {
		if r.Process.ID == id {
			return r
		}
	}
	t.Fatalf("no result for %s", id)
	return core.Result{}
}

func TestFirstComeFirstServe(t *testing.T) {
	outcome := ScheduleFirstComeFirstServe([]core.Process{proc("P1", 0, 5), proc("P2", 1, 3)})
	assert.Equal(t, []string{"P1 0-5", "P2 5-8"}, timeline(outcome.Gantt))
	assert.Equal(t, map[string]int{"P1": 0, "P2": 4}, waitingTimes(outcome.Results))
}

func TestFirstComeFirstServe_UnsortedWithIdleGap(t *testing.T) {
	outcome := ScheduleFirstComeFirstServe([]core.Process{proc("P1", 4, 3), proc("P2", 0, 1), proc("P3", 4, 1)})
	assert.Equal(t, []string{"P2 0-1", "P1 4-7", "P3 7-8"}, timeline(outcome.Gantt))
	assert.Equal(t, core.CpuMetric{TotalTime: 8, UtilizationTime: 5, IdleTime: 3}, outcome.Metric)
}

func TestShortestJobFirst(t *testing.T) {
	outcome := ScheduleShortestJobFirst([]core.Process{proc("P1", 0, 7), proc("P2", 2, 4), proc("P3", 4, 1)})
	assert.Equal(t, []string{"P1 0-7", "P3 7-8", "P2 8-12"}, timeline(outcome.Gantt))
	assert.Equal(t, map[string]int{"P1": 0, "P2": 6, "P3": 3}, waitingTimes(outcome.Results))
}

func TestShortestJobFirst_TieGoesToInputOrder(t *testing.T) {
	// At t=2, B and A both need 3 units. A arrived earlier, but B comes first
	// in the input, so B wins.
	outcome := ScheduleShortestJobFirst([]core.Process{proc("X", 0, 2), proc("B", 1, 3), proc("A", 0, 3)})
	assert.Equal(t, []string{"X 0-2", "B 2-5", "A 5-8"}, timeline(outcome.Gantt))
}

func TestRoundRobin(t *testing.T) {
	outcome := ScheduleRoundRobin([]core.Process{proc("P1", 0, 5), proc("P2", 1, 3)}, 2)
	assert.Equal(t, []string{"P1 0-2", "P2 2-4", "P1 4-6", "P2 6-7", "P1 7-8"}, timeline(outcome.Gantt))

	p1 := resultFor(t, outcome.Results, "P1")
	assert.Equal(t, 0, p1.StartTime)
	assert.Equal(t, 8, p1.EndTime)
	assert.Equal(t, 3, p1.WaitingTime)

	p2 := resultFor(t, outcome.Results, "P2")
	assert.Equal(t, 2, p2.StartTime)
	assert.Equal(t, 7, p2.EndTime)
	assert.Equal(t, 3, p2.WaitingTime)
	assert.Equal(t, 1, p2.ResponseTime)
}

func TestRoundRobin_ArrivalsQueueBeforePreempted(t *testing.T) {
	// P2 arrives exactly when P1's slice ends and must be served before P1.
	outcome := ScheduleRoundRobin([]core.Process{proc("P1", 0, 4), proc("P2", 2, 2)}, 2)
	assert.Equal(t, []string{"P1 0-2", "P2 2-4", "P1 4-6"}, timeline(outcome.Gantt))
}

func TestRoundRobin_SimultaneousAdmissionsKeepInputOrder(t *testing.T) {
	// B and C both arrive during P1's slice and are queued in input order,
	// even though B arrived first.
	outcome := ScheduleRoundRobin([]core.Process{proc("P1", 0, 4), proc("C", 3, 2), proc("B", 1, 2)}, 4)
	assert.Equal(t, []string{"P1 0-4", "C 4-6", "B 6-8"}, timeline(outcome.Gantt))
}

func TestRoundRobin_IdleGap(t *testing.T) {
	outcome := ScheduleRoundRobin([]core.Process{proc("P1", 0, 1), proc("P2", 5, 3)}, 2)
	assert.Equal(t, []string{"P1 0-1", "P2 5-7", "P2 7-8"}, timeline(outcome.Gantt))
	assert.Equal(t, 4, outcome.Metric.IdleTime)
}

func TestRoundRobin_LargeQuantumIsFCFS(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 5), proc("P2", 1, 3), proc("P3", 9, 2)}
	assert.Equal(t,
		timeline(ScheduleFirstComeFirstServe(processes).Gantt),
		timeline(ScheduleRoundRobin(processes, 100).Gantt))
}

func TestPriority(t *testing.T) {
	outcome := SchedulePriority([]core.Process{procP("P1", 0, 4, 3), procP("P2", 1, 2, 1), procP("P3", 2, 3, 2)})
	assert.Equal(t, []string{"P1 0-4", "P2 4-6", "P3 6-9"}, timeline(outcome.Gantt))
}

func TestPriority_MissingPriorityIsZero(t *testing.T) {
	outcome := SchedulePriority([]core.Process{procP("X", 0, 2, 5), proc("Y", 1, 3), procP("Z", 1, 3, 1)})
	assert.Equal(t, []string{"X 0-2", "Y 2-5", "Z 5-8"}, timeline(outcome.Gantt))
}

func TestPriority_TieGoesToInputOrder(t *testing.T) {
	outcome := SchedulePriority([]core.Process{procP("X", 0, 2, 1), procP("B", 1, 1, 2), procP("A", 0, 1, 2)})
	assert.Equal(t, []string{"X 0-2", "B 2-3", "A 3-4"}, timeline(outcome.Gantt))
}

func TestPreemptivePriority(t *testing.T) {
	outcome := SchedulePreemptivePriority([]core.Process{procP("P1", 0, 5, 2), procP("P2", 1, 3, 1)})
	assert.Equal(t, []string{"P1 0-1", "P2 1-4", "P1 4-8"}, timeline(outcome.Gantt))

	p1 := resultFor(t, outcome.Results, "P1")
	assert.Equal(t, 0, p1.StartTime)
	assert.Equal(t, 8, p1.TurnaroundTime)
	assert.Equal(t, 3, p1.WaitingTime)
	assert.Equal(t, 0, resultFor(t, outcome.Results, "P2").WaitingTime)
}

func TestPreemptivePriority_EqualPriorityDoesNotPreempt(t *testing.T) {
	outcome := SchedulePreemptivePriority([]core.Process{procP("P1", 0, 4, 1), procP("P2", 1, 2, 1)})
	assert.Equal(t, []string{"P1 0-4", "P2 4-6"}, timeline(outcome.Gantt))
}

func TestPreemptivePriority_LaterArrivalPreempts(t *testing.T) {
	// P2 arrives first but is less urgent; P3 arrives later and preempts.
	outcome := SchedulePreemptivePriority([]core.Process{procP("P1", 0, 6, 2), procP("P2", 1, 2, 3), procP("P3", 3, 1, 1)})
	assert.Equal(t, []string{"P1 0-3", "P3 3-4", "P1 4-7", "P2 7-9"}, timeline(outcome.Gantt))
}

func TestPreemptivePriority_SharedArrivalTime(t *testing.T) {
	// P2 and P3 both arrive at t=2. Only P3 is more urgent than P1, and it
	// must still be noticed even though P2 comes first in the input.
	outcome := SchedulePreemptivePriority([]core.Process{procP("P1", 0, 5, 2), procP("P2", 2, 3, 3), procP("P3", 2, 1, 1)})
	assert.Equal(t, []string{"P1 0-2", "P3 2-3", "P1 3-6", "P2 6-9"}, timeline(outcome.Gantt))
}

func TestPreemptivePriority_IdleStart(t *testing.T) {
	outcome := SchedulePreemptivePriority([]core.Process{procP("P1", 3, 2, 1)})
	assert.Equal(t, []string{"P1 3-5"}, timeline(outcome.Gantt))
	assert.Equal(t, core.CpuMetric{TotalTime: 5, UtilizationTime: 2, IdleTime: 3}, outcome.Metric)
}

func TestShortestRemainingTimeFirst(t *testing.T) {
	outcome := ScheduleShortestRemainingTimeFirst([]core.Process{
		proc("P1", 0, 8), proc("P2", 1, 4), proc("P3", 2, 9), proc("P4", 3, 5),
	})
	assert.Equal(t, []string{"P1 0-1", "P2 1-5", "P4 5-10", "P1 10-17", "P3 17-26"}, timeline(outcome.Gantt))
	assert.Equal(t, map[string]int{"P1": 9, "P2": 0, "P3": 15, "P4": 2}, waitingTimes(outcome.Results))
}

func TestShortestRemainingTimeFirst_PreemptsAtArrival(t *testing.T) {
	outcome := ScheduleShortestRemainingTimeFirst([]core.Process{proc("P1", 0, 10), proc("P2", 3, 2)})
	assert.Equal(t, []string{"P1 0-3", "P2 3-5", "P1 5-12"}, timeline(outcome.Gantt))

	p1 := resultFor(t, outcome.Results, "P1")
	assert.Equal(t, 0, p1.StartTime)
	assert.Equal(t, 12, p1.EndTime)
	assert.Equal(t, 2, p1.WaitingTime)
}

func TestShortestRemainingTimeFirst_EqualRemainingDoesNotPreempt(t *testing.T) {
	outcome := ScheduleShortestRemainingTimeFirst([]core.Process{proc("P1", 0, 4), proc("P2", 2, 2)})
	assert.Equal(t, []string{"P1 0-4", "P2 4-6"}, timeline(outcome.Gantt))
}

func TestShortestRemainingTimeFirst_SharedArrivalTime(t *testing.T) {
	outcome := ScheduleShortestRemainingTimeFirst([]core.Process{proc("P1", 0, 6), proc("P2", 2, 5), proc("P3", 2, 1)})
	assert.Equal(t, []string{"P1 0-2", "P3 2-3", "P1 3-7", "P2 7-12"}, timeline(outcome.Gantt))
}

func TestShortestRemainingTimeFirst_TieGoesToInputOrder(t *testing.T) {
	outcome := ScheduleShortestRemainingTimeFirst([]core.Process{proc("B", 1, 3), proc("X", 0, 1), proc("A", 0, 3)})
	assert.Equal(t, []string{"X 0-1", "B 1-4", "A 4-7"}, timeline(outcome.Gantt))
}

func TestMultilevelFeedbackQueue(t *testing.T) {
	outcome := ScheduleMultilevelFeedbackQueue([]core.Process{proc("P1", 0, 7), proc("P2", 1, 3)}, []int{2, 4})
	assert.Equal(t, []string{"P1 0-2", "P2 2-4", "P1 4-8", "P2 8-9", "P1 9-10"}, timeline(outcome.Gantt))
}

func TestMultilevelFeedbackQueue_NoMidSlicePreemption(t *testing.T) {
	// A slice already running in level 1 is not cut short by a new arrival.
	// An arrival that is queued by the time the slice ends goes first.
	outcome := ScheduleMultilevelFeedbackQueue([]core.Process{proc("P1", 0, 6), proc("P2", 3, 1)}, []int{2, 8})
	assert.Equal(t, []string{"P1 0-2", "P1 2-6"}, timeline(outcome.Gantt)[:2])

	outcome = ScheduleMultilevelFeedbackQueue([]core.Process{proc("P1", 0, 6), proc("P2", 2, 1)}, []int{2, 8})
	assert.Equal(t, []string{"P1 0-2", "P2 2-3", "P1 3-7"}, timeline(outcome.Gantt))
}

func TestMultilevelFeedbackQueue_SimultaneousAdmissionsKeepInputOrder(t *testing.T) {
	outcome := ScheduleMultilevelFeedbackQueue([]core.Process{proc("P1", 0, 4), proc("C", 3, 2), proc("B", 1, 2)}, []int{4, 8})
	assert.Equal(t, []string{"P1 0-4", "C 4-6", "B 6-8"}, timeline(outcome.Gantt))
}

func TestMultilevelFeedbackQueue_SingleLevelIsRoundRobin(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 5), proc("P2", 1, 3), proc("P3", 2, 6), proc("P4", 12, 2)}
	assert.Equal(t,
		timeline(ScheduleRoundRobin(processes, 3).Gantt),
		timeline(ScheduleMultilevelFeedbackQueue(processes, []int{3}).Gantt))
}

func TestSchedule(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 5), proc("P2", 1, 3)}

	outcome, err := Schedule(FirstComeFirstServe, processes, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"P1 0-5", "P2 5-8"}, timeline(outcome.Gantt))

	outcome, err = Schedule("RR", processes, Options{TimeQuantum: 2})
	require.NoError(t, err)
	assert.Len(t, outcome.Gantt, 5)
}

func TestSchedule_Empty(t *testing.T) {
	for _, a := range Algorithms {
		outcome, err := Schedule(a, nil, Options{})
		require.NoError(t, err, a)
		assert.Empty(t, outcome.Gantt, a)
		assert.Empty(t, outcome.Results, a)
		assert.NotNil(t, outcome.Gantt, a)
	}
}

func TestSchedule_Errors(t *testing.T) {
	ok := []core.Process{proc("P1", 0, 1)}

	_, err := Schedule("lottery", ok, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = Schedule("lottery", nil, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = Schedule(RoundRobin, ok, Options{TimeQuantum: 0})
	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)

	_, err = Schedule(MultilevelFeedbackQueue, ok, Options{LevelsTimeQuantum: []int{2, 0}})
	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)

	_, err = Schedule(MultilevelFeedbackQueue, ok, Options{})
	assert.ErrorIs(t, err, ErrInvalidTimeQuantum)

	invalid := map[string][]core.Process{
		"zero burst":       {proc("P1", 0, 0)},
		"negative burst":   {proc("P1", 0, -3)},
		"negative arrival": {proc("P1", -1, 2)},
		"empty id":         {{Name: "P1", BurstTime: 2}},
		"duplicate id":     {proc("P1", 0, 1), proc("P1", 1, 1)},
	}
	for name, processes := range invalid {
		_, err := Schedule(ShortestJobFirst, processes, Options{})
		assert.ErrorIs(t, err, ErrInvalidProcess, name)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"fcfs":                FirstComeFirstServe,
		"SJF":                 ShortestJobFirst,
		"rr":                  RoundRobin,
		"roundrobin":          RoundRobin,
		" priority ":          Priority,
		"preemptive-priority": PreemptivePriority,
		"srtf":                ShortestRemainingTime,
		"mlfq":                MultilevelFeedbackQueue,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseAlgorithm("")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestAlgorithmTraits(t *testing.T) {
	assert.False(t, FirstComeFirstServe.Preemptive())
	assert.True(t, ShortestRemainingTime.Preemptive())
	assert.True(t, Priority.UsesPriority())
	assert.False(t, RoundRobin.UsesPriority())
	assert.Equal(t, "Round-robin", RoundRobin.Title())
}
