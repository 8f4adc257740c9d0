// Package report renders simulation results as text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

// maxChartWidth bounds the Gantt bar; longer schedules are scaled down.
const maxChartWidth = 64

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteGantt prints one row per process with its segments and a bar where
// '#' marks time on the CPU.
func WriteGantt(w io.Writer, timeline core.Timeline) {
	makespan := 0
	for _, p := range timeline {
		if end := p.Completion(); end > makespan {
			makespan = end
		}
	}
	scale := 1
	if makespan > maxChartWidth {
		scale = (makespan + maxChartWidth - 1) / maxChartWidth
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Segments", fmt.Sprintf("0..%d", makespan)})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, p := range timeline {
		table.Append([]string{p.Process, formatSegments(p.Segments), bar(p.Segments, makespan, scale)})
	}
	table.Render()
}

func WriteStats(w io.Writer, stats []schedulers.ProcessStats, averages schedulers.AverageStats) {
	_, _ = fmt.Fprintln(w, "Statistics")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "TS", "TE", "Waiting", "Response"})
	for _, s := range stats {
		table.Append([]string{
			s.Process,
			fmt.Sprint(s.TS),
			fmt.Sprint(s.TE),
			fmt.Sprint(s.Waiting),
			fmt.Sprint(s.Response),
		})
	}
	table.SetFooter([]string{
		"Average",
		fmt.Sprintf("%.2f", averages.TS),
		fmt.Sprintf("%.2f", averages.TE),
		fmt.Sprintf("%.2f", averages.Waiting),
		fmt.Sprintf("%.2f", averages.Response),
	})
	table.Render()
}

func WriteSummary(w io.Writer, summary schedulers.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Total", "Busy", "Idle", "Switches", "Utilization", "Throughput"})
	table.Append([]string{
		fmt.Sprint(summary.Makespan),
		fmt.Sprint(summary.BusyTime),
		fmt.Sprint(summary.IdleTime),
		fmt.Sprint(summary.ContextSwitches),
		fmt.Sprintf("%.2f", summary.Utilization),
		fmt.Sprintf("%.2f/t", summary.Throughput),
	})
	table.Render()
}

// WriteResult prints the full report for one algorithm.
func WriteResult(w io.Writer, result schedulers.Result) {
	title := result.Algorithm.Title()
	if result.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, result.TimeQuantum)
	}
	WriteTitle(w, title)
	WriteGantt(w, result.Timeline)
	WriteStats(w, result.Stats, result.Averages)
	WriteSummary(w, result.Summary)
	_, _ = fmt.Fprintln(w)
}

func formatSegments(segments []core.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, fmt.Sprintf("[%d,%d]", s.Start, s.End))
	}
	return strings.Join(parts, " ")
}

func bar(segments []core.Segment, makespan, scale int) string {
	cells := make([]byte, (makespan+scale-1)/scale)
	for i := range cells {
		cells[i] = '.'
	}
	for _, s := range segments {
		for t := s.Start; t < s.End; t++ {
			cells[t/scale] = '#'
		}
	}
	return string(cells)
}
