package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

const blockWidth = 8

// Report writes a titled Gantt timeline, the legend and the metrics table.
func Report(w io.Writer, title string, resp responses.ScheduleResponse) {
	Title(w, title)
	if len(resp.Gantt) == 0 {
		_, _ = fmt.Fprintf(w, "nothing to schedule\n\n")
		return
	}
	Gantt(w, resp.Gantt)
	writeLegend(w, resp.Legend)
	Table(w, resp)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one block per interval, with "idle" blocks for the gaps, and
// the time marks underneath.
func Gantt(w io.Writer, gantt []responses.IntervalResponse) {
	var blocks, marks strings.Builder
	blocks.WriteString("|")

	previousEnd := 0
	for _, interval := range gantt {
		if interval.StartTime > previousEnd {
			blocks.WriteString(center("idle") + "|")
			marks.WriteString(mark(previousEnd))
		}
		blocks.WriteString(center(interval.Name) + "|")
		marks.WriteString(mark(interval.StartTime))
		previousEnd = interval.EndTime
	}
	marks.WriteString(fmt.Sprint(previousEnd))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, blocks.String())
	_, _ = fmt.Fprintln(w, marks.String())
	_, _ = fmt.Fprintln(w)
}

func writeLegend(w io.Writer, legend []responses.LegendEntry) {
	entries := make([]string, 0, len(legend))
	for _, entry := range legend {
		entries = append(entries, fmt.Sprintf("%s %s", entry.Color, entry.Name))
	}
	_, _ = fmt.Fprintf(w, "Legend: %s\n\n", strings.Join(entries, ", "))
}

// Table prints one row per process, in completion order, with the averages in
// the footer.
func Table(w io.Writer, resp responses.ScheduleResponse) {
	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		priority := ""
		if d.Priority != nil {
			priority = fmt.Sprint(*d.Priority)
		}
		rows = append(rows, []string{
			d.Name,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			priority,
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Priority", "Start", "End", "Waiting", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t\n\n", resp.CpuUtilization*100, resp.CpuThroughput)
}

func center(label string) string {
	if len(label) >= blockWidth {
		return label[:blockWidth]
	}
	left := (blockWidth - len(label)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", blockWidth-len(label)-left)
}

func mark(t int) string {
	s := fmt.Sprint(t)
	if len(s) > blockWidth {
		return s + " "
	}
	return s + strings.Repeat(" ", blockWidth+1-len(s))
}
