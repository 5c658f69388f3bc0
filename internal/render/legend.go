package render

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// Palette is cycled through when more processes than colors are shown.
var Palette = []string{
	"#3b82f6", "#10b981", "#eab308", "#a855f7", "#ec4899",
	"#6366f1", "#ef4444", "#14b8a6", "#f97316", "#06b6d4",
}

// Legend gives every distinct process in the timeline one color, in the
// order the processes first appear.
func Legend(gantt []core.Interval) []responses.LegendEntry {
	legend := make([]responses.LegendEntry, 0)
	seen := make(map[string]bool)
	for _, interval := range gantt {
		id := interval.Process.ID
		if seen[id] {
			continue
		}
		seen[id] = true
		legend = append(legend, responses.LegendEntry{
			ProcessId: id,
			Name:      interval.Process.Name,
			Color:     Palette[len(legend)%len(Palette)],
		})
	}
	return legend
}
