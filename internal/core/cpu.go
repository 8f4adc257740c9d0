package core

import "sort"

// CpuMetric describes how a single CPU spent the interval [0, TotalTime).
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// CPU is a discrete single-core clock that records which process ran when.
// A zero-unit execution is dropped, so no degenerate segment is ever stored.
type CPU struct {
	clock    int
	order    []string
	segments map[string][]Segment
}

func NewCPU() *CPU {
	return &CPU{segments: make(map[string][]Segment)}
}

func (c *CPU) Clock() int {
	return c.clock
}

// AdvanceTo jumps the clock forward while the CPU is idle. Moving backwards is ignored.
func (c *CPU) AdvanceTo(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs process id for units time units starting at the current clock.
func (c *CPU) Execute(id string, units int) Segment {
	segment := Segment{Start: c.clock, End: c.clock + units}
	if units <= 0 {
		return segment
	}
	if _, ok := c.segments[id]; !ok {
		c.order = append(c.order, id)
	}
	c.segments[id] = append(c.segments[id], segment)
	c.clock = segment.End
	return segment
}

// Timeline groups recorded segments by process and orders groups by id.
// When merge is set, contiguous segments of the same process are collapsed.
func (c *CPU) Timeline(merge bool) Timeline {
	timeline := make(Timeline, 0, len(c.order))
	for _, id := range c.order {
		segments := append([]Segment(nil), c.segments[id]...)
		if merge {
			segments = MergeContiguous(segments)
		}
		timeline = append(timeline, ProcessTimeline{Process: id, Segments: segments})
	}
	SortByProcessID(timeline)
	return timeline
}

// Measure derives CPU usage from a finished timeline. Idle time counts gaps
// between 0 and the last completion.
func Measure(t Timeline) CpuMetric {
	type owned struct {
		Segment
		process string
	}
	var all []owned
	metric := CpuMetric{}
	for _, p := range t {
		for _, s := range p.Segments {
			all = append(all, owned{Segment: s, process: p.Process})
			metric.UtilizationTime += s.Duration()
			if s.End > metric.TotalTime {
				metric.TotalTime = s.End
			}
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Start < all[j].Start })
	for i := 1; i < len(all); i++ {
		if all[i].process != all[i-1].process {
			metric.ContextSwitches++
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
