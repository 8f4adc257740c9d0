package responses

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

type SegmentResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type TimelineResponse struct {
	Process  string            `json:"process"`
	Segments []SegmentResponse `json:"segments"`
}

type ProcessResponse struct {
	Process      string `json:"process"`
	TurnAround   int    `json:"ts"`
	Execution    int    `json:"te"`
	WaitingTime  int    `json:"waiting_time"`
	ResponseTime int    `json:"response_time"`
}

type AverageResponse struct {
	TurnAround   float64 `json:"ts"`
	Execution    float64 `json:"te"`
	WaitingTime  float64 `json:"waiting_time"`
	ResponseTime float64 `json:"response_time"`
}

type SummaryResponse struct {
	TotalTime       int     `json:"total_time"`
	BusyTime        int     `json:"busy_time"`
	IdleTime        int     `json:"idle_time"`
	ContextSwitches int     `json:"context_switches"`
	CpuUtilization  float64 `json:"cpu_utilization"`
	CpuThroughput   float64 `json:"cpu_throughput"`
}

type ScheduleResponse struct {
	RunID       string             `json:"run_id,omitempty"`
	Algorithm   string             `json:"algorithm"`
	Title       string             `json:"title"`
	TimeQuantum int                `json:"time_quantum,omitempty"`
	Timeline    []TimelineResponse `json:"timeline"`
	Details     []ProcessResponse  `json:"details"`
	Averages    AverageResponse    `json:"averages"`
	Summary     SummaryResponse    `json:"summary"`
}

type AllResponse struct {
	RunID   string             `json:"run_id,omitempty"`
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromResult(runID string, result schedulers.Result) ScheduleResponse {
	response := ScheduleResponse{
		RunID:       runID,
		Algorithm:   string(result.Algorithm),
		Title:       result.Algorithm.Title(),
		TimeQuantum: result.TimeQuantum,
		Timeline:    FromTimeline(result.Timeline),
		Details:     make([]ProcessResponse, 0, len(result.Stats)),
		Averages: AverageResponse{
			TurnAround:   result.Averages.TS,
			Execution:    result.Averages.TE,
			WaitingTime:  result.Averages.Waiting,
			ResponseTime: result.Averages.Response,
		},
		Summary: SummaryResponse{
			TotalTime:       result.Summary.Makespan,
			BusyTime:        result.Summary.BusyTime,
			IdleTime:        result.Summary.IdleTime,
			ContextSwitches: result.Summary.ContextSwitches,
			CpuUtilization:  result.Summary.Utilization,
			CpuThroughput:   result.Summary.Throughput,
		},
	}
	for _, s := range result.Stats {
		response.Details = append(response.Details, ProcessResponse{
			Process:      s.Process,
			TurnAround:   s.TS,
			Execution:    s.TE,
			WaitingTime:  s.Waiting,
			ResponseTime: s.Response,
		})
	}
	return response
}

func FromResults(runID string, results []schedulers.Result) AllResponse {
	all := AllResponse{RunID: runID, Results: make([]ScheduleResponse, 0, len(results))}
	for _, r := range results {
		all.Results = append(all.Results, FromResult("", r))
	}
	return all
}

func FromTimeline(timeline core.Timeline) []TimelineResponse {
	out := make([]TimelineResponse, 0, len(timeline))
	for _, p := range timeline {
		segments := make([]SegmentResponse, 0, len(p.Segments))
		for _, s := range p.Segments {
			segments = append(segments, SegmentResponse{Start: s.Start, End: s.End})
		}
		out = append(out, TimelineResponse{Process: p.Process, Segments: segments})
	}
	return out
}
