package core

import (
	"sort"
	"strconv"
)

// Segment is a half-open interval [Start, End) during which one process held the CPU.
type Segment struct {
	Start int
	End   int
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

type ProcessTimeline struct {
	Process  string
	Segments []Segment
}

// Busy returns the total time spent on the CPU.
func (p ProcessTimeline) Busy() int {
	busy := 0
	for _, s := range p.Segments {
		busy += s.Duration()
	}
	return busy
}

// Completion returns the largest segment end, or 0 when there are no segments.
func (p ProcessTimeline) Completion() int {
	end := 0
	for _, s := range p.Segments {
		if s.End > end {
			end = s.End
		}
	}
	return end
}

// Timeline holds per-process segments ordered by the numeric suffix of the
// process id (P1, P2, ..., P10), not by execution order.
type Timeline []ProcessTimeline

func (t Timeline) Lookup(id string) (ProcessTimeline, bool) {
	for _, p := range t {
		if p.Process == id {
			return p, true
		}
	}
	return ProcessTimeline{}, false
}

// Merged returns a copy of t with contiguous segments of each process collapsed.
func (t Timeline) Merged() Timeline {
	merged := make(Timeline, 0, len(t))
	for _, p := range t {
		merged = append(merged, ProcessTimeline{
			Process:  p.Process,
			Segments: MergeContiguous(p.Segments),
		})
	}
	return merged
}

// MergeContiguous collapses runs where segments[i].Start == segments[i-1].End.
// Segments must already be ordered by start time.
func MergeContiguous(segments []Segment) []Segment {
	merged := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if n := len(merged); n > 0 && merged[n-1].End == s.Start {
			merged[n-1].End = s.End
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// SortByProcessID orders t in place by id suffix. Ids without a numeric
// suffix sort after numbered ones, lexicographically.
func SortByProcessID(t Timeline) {
	sort.SliceStable(t, func(i, j int) bool {
		return LessProcessID(t[i].Process, t[j].Process)
	})
}

func LessProcessID(a, b string) bool {
	na, okA := processNumber(a)
	nb, okB := processNumber(b)
	switch {
	case okA && okB:
		if na != nb {
			return na < nb
		}
		return a < b
	case okA:
		return true
	case okB:
		return false
	}
	return a < b
}

func processNumber(id string) (int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}
