package schedulers

import (
	"log/slog"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

// ProcessStats holds the metrics of one process. TS is turnaround (completion
// minus arrival) and TE is the CPU time consumed.
type ProcessStats struct {
	Process  string
	TS       int
	TE       int
	Waiting  int
	Response int
}

// AverageStats are per-algorithm means rounded to two decimals.
type AverageStats struct {
	TS       float64
	TE       float64
	Waiting  float64
	Response float64
}

type Summary struct {
	Makespan        int
	BusyTime        int
	IdleTime        int
	ContextSwitches int
	Utilization     float64
	Throughput      float64
}

// ComputeStats derives per-process metrics from a timeline. Entries whose
// process is missing from processes are logged and skipped.
func ComputeStats(timeline core.Timeline, processes []core.Process) []ProcessStats {
	byID := make(map[string]core.Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}

	stats := make([]ProcessStats, 0, len(timeline))
	for _, entry := range timeline {
		original, ok := byID[entry.Process]
		if !ok {
			slog.Warn("process not found in original process set", "process", entry.Process)
			continue
		}
		stats = append(stats, generateProcessDetails(entry, original))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return core.LessProcessID(stats[i].Process, stats[j].Process)
	})
	return stats
}

func generateProcessDetails(entry core.ProcessTimeline, original core.Process) ProcessStats {
	if len(entry.Segments) == 0 {
		return ProcessStats{Process: entry.Process}
	}

	firstStart := entry.Segments[0].Start
	for _, s := range entry.Segments {
		if s.Start < firstStart {
			firstStart = s.Start
		}
	}

	te := entry.Busy()
	ts := entry.Completion() - original.ArrivalTime
	return ProcessStats{
		Process:  entry.Process,
		TS:       ts,
		TE:       te,
		Waiting:  ts - te,
		Response: firstStart - original.ArrivalTime,
	}
}

// ComputeAverages averages ComputeStats. An empty timeline yields zeros.
func ComputeAverages(timeline core.Timeline, processes []core.Process) AverageStats {
	return averageOf(ComputeStats(timeline, processes))
}

func averageOf(stats []ProcessStats) AverageStats {
	ts := make([]int, 0, len(stats))
	te := make([]int, 0, len(stats))
	waiting := make([]int, 0, len(stats))
	response := make([]int, 0, len(stats))
	for _, s := range stats {
		ts = append(ts, s.TS)
		te = append(te, s.TE)
		waiting = append(waiting, s.Waiting)
		response = append(response, s.Response)
	}

	return AverageStats{
		TS:       util.Round(util.Mean(ts), 2),
		TE:       util.Round(util.Mean(te), 2),
		Waiting:  util.Round(util.Mean(waiting), 2),
		Response: util.Round(util.Mean(response), 2),
	}
}

// ComputeSummary reports CPU usage over [0, makespan).
func ComputeSummary(timeline core.Timeline) Summary {
	metric := core.Measure(timeline)
	summary := Summary{
		Makespan:        metric.TotalTime,
		BusyTime:        metric.UtilizationTime,
		IdleTime:        metric.IdleTime,
		ContextSwitches: metric.ContextSwitches,
	}
	if metric.TotalTime > 0 {
		summary.Utilization = util.Round(float64(metric.UtilizationTime)/float64(metric.TotalTime), 2)
		summary.Throughput = util.Round(float64(len(timeline))/float64(metric.TotalTime), 2)
	}
	return summary
}
