package schedulers

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func seedProcesses() []core.Process {
	return []core.Process{
		{ID: "P1", ServiceTime: 5, ArrivalTime: 0, Priority: 3},
		{ID: "P2", ServiceTime: 3, ArrivalTime: 1, Priority: 1},
		{ID: "P3", ServiceTime: 8, ArrivalTime: 2, Priority: 2},
	}
}

func seg(start, end int) core.Segment {
	return core.Segment{Start: start, End: end}
}

func TestNonPreemptiveSeedScenario(t *testing.T) {
	want := core.Timeline{
		{Process: "P1", Segments: []core.Segment{seg(0, 5)}},
		{Process: "P2", Segments: []core.Segment{seg(5, 8)}},
		{Process: "P3", Segments: []core.Segment{seg(8, 16)}},
	}

	assert.Equal(t, want, ScheduleFirstComeFirstServe(seedProcesses()), "fifo")
	assert.Equal(t, want, ScheduleShortestJobFirst(seedProcesses()), "sjf")
	assert.Equal(t, want, SchedulePriority(seedProcesses()), "priority")
}

func TestFirstComeFirstServe(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name: "equal arrivals keep input order",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 2, ArrivalTime: 2},
				{ID: "P2", ServiceTime: 1, ArrivalTime: 0},
				{ID: "P3", ServiceTime: 4, ArrivalTime: 0},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(5, 7)}},
				{Process: "P2", Segments: []core.Segment{seg(0, 1)}},
				{Process: "P3", Segments: []core.Segment{seg(1, 5)}},
			},
		},
		{
			name: "idle gap jumps to next arrival",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 2, ArrivalTime: 3},
				{ID: "P2", ServiceTime: 1, ArrivalTime: 20},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(3, 5)}},
				{Process: "P2", Segments: []core.Segment{seg(20, 21)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScheduleFirstComeFirstServe(tt.processes))
		})
	}
}

func TestShortestJobFirst(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name: "ties go to earliest input among available",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 2, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 3, ArrivalTime: 1},
				{ID: "P3", ServiceTime: 3, ArrivalTime: 0},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 2)}},
				{Process: "P2", Segments: []core.Segment{seg(2, 5)}},
				{Process: "P3", Segments: []core.Segment{seg(5, 8)}},
			},
		},
		{
			name: "shorter late arrival waits for the running job",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 6, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 8, ArrivalTime: 1},
				{ID: "P3", ServiceTime: 1, ArrivalTime: 2},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 6)}},
				{Process: "P2", Segments: []core.Segment{seg(7, 15)}},
				{Process: "P3", Segments: []core.Segment{seg(6, 7)}},
			},
		},
		{
			name: "idle skip",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 2, ArrivalTime: 5},
				{ID: "P2", ServiceTime: 1, ArrivalTime: 10},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(5, 7)}},
				{Process: "P2", Segments: []core.Segment{seg(10, 11)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScheduleShortestJobFirst(tt.processes))
		})
	}
}

func TestPriority(t *testing.T) {
	processes := []core.Process{
		{ID: "P1", ServiceTime: 3, ArrivalTime: 0, Priority: 5},
		{ID: "P2", ServiceTime: 2, ArrivalTime: 1, Priority: 4},
		{ID: "P3", ServiceTime: 1, ArrivalTime: 1, Priority: 1},
		{ID: "P4", ServiceTime: 4, ArrivalTime: 2, Priority: 4},
	}
	want := core.Timeline{
		{Process: "P1", Segments: []core.Segment{seg(0, 3)}},
		{Process: "P2", Segments: []core.Segment{seg(4, 6)}},
		{Process: "P3", Segments: []core.Segment{seg(3, 4)}},
		{Process: "P4", Segments: []core.Segment{seg(6, 10)}},
	}

	assert.Equal(t, want, SchedulePriority(processes))
}

func TestShortestRemainingTimeFirst(t *testing.T) {
	tests := []struct {
		name      string
		processes []core.Process
		want      core.Timeline
	}{
		{
			name:      "seed scenario",
			processes: seedProcesses(),
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 1), seg(4, 8)}},
				{Process: "P2", Segments: []core.Segment{seg(1, 4)}},
				{Process: "P3", Segments: []core.Segment{seg(8, 16)}},
			},
		},
		{
			name: "preemption by shorter arrivals",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 8, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 4, ArrivalTime: 1},
				{ID: "P3", ServiceTime: 9, ArrivalTime: 2},
				{ID: "P4", ServiceTime: 5, ArrivalTime: 3},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 1), seg(10, 17)}},
				{Process: "P2", Segments: []core.Segment{seg(1, 5)}},
				{Process: "P3", Segments: []core.Segment{seg(17, 26)}},
				{Process: "P4", Segments: []core.Segment{seg(5, 10)}},
			},
		},
		{
			name: "equal remaining keeps the earlier input running",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 3, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 2, ArrivalTime: 1},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 3)}},
				{Process: "P2", Segments: []core.Segment{seg(3, 5)}},
			},
		},
		{
			name: "idle gap",
			processes: []core.Process{
				{ID: "P1", ServiceTime: 1, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 2, ArrivalTime: 4},
			},
			want: core.Timeline{
				{Process: "P1", Segments: []core.Segment{seg(0, 1)}},
				{Process: "P2", Segments: []core.Segment{seg(4, 6)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleShortestRemainingTimeFirst(tt.processes)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, got.Merged(), "merge must be idempotent")
		})
	}
}

func TestRoundRobin(t *testing.T) {
	got := ScheduleRoundRobin(seedProcesses(), 2)
	want := core.Timeline{
		{Process: "P1", Segments: []core.Segment{seg(0, 2), seg(6, 8), seg(11, 12)}},
		{Process: "P2", Segments: []core.Segment{seg(2, 4), seg(8, 9)}},
		{Process: "P3", Segments: []core.Segment{seg(4, 6), seg(9, 11), seg(12, 14), seg(14, 16)}},
	}
	assert.Equal(t, want, got)

	for _, p := range got {
		for i, s := range p.Segments {
			if i < len(p.Segments)-1 {
				assert.LessOrEqual(t, s.Duration(), 2, "%s slice %d", p.Process, i)
			}
		}
	}
}

func TestRoundRobinQuantum(t *testing.T) {
	processes := []core.Process{
		{ID: "P1", ServiceTime: 4, ArrivalTime: 0},
		{ID: "P2", ServiceTime: 1, ArrivalTime: 6},
	}

	assert.Equal(t, core.Timeline{
		{Process: "P1", Segments: []core.Segment{seg(0, 3), seg(3, 4)}},
		{Process: "P2", Segments: []core.Segment{seg(6, 7)}},
	}, ScheduleRoundRobin(processes, 3))

	assert.Equal(t, ScheduleRoundRobin(processes, DefaultTimeQuantum), ScheduleRoundRobin(processes, 0))
}

func TestEmptyAndZeroServiceInputs(t *testing.T) {
	for _, a := range Algorithms {
		t.Run(string(a), func(t *testing.T) {
			empty, err := Schedule(a, nil, Options{})
			require.NoError(t, err)
			assert.Empty(t, empty)

			timeline, err := Schedule(a, []core.Process{
				{ID: "P1", ServiceTime: 0, ArrivalTime: 0},
				{ID: "P2", ServiceTime: 2, ArrivalTime: 1},
			}, Options{})
			require.NoError(t, err)
			assert.Equal(t, core.Timeline{
				{Process: "P2", Segments: []core.Segment{seg(1, 3)}},
			}, timeline)
		})
	}
}

func TestInputIsNotMutated(t *testing.T) {
	processes := []core.Process{
		{ID: "P3", ServiceTime: 2, ArrivalTime: 4, Priority: 1},
		{ID: "P1", ServiceTime: 5, ArrivalTime: 0, Priority: 2},
		{ID: "P2", ServiceTime: 1, ArrivalTime: 1, Priority: 3},
	}
	snapshot := append([]core.Process(nil), processes...)

	for _, a := range Algorithms {
		_, err := Schedule(a, processes, Options{})
		require.NoError(t, err)
		assert.Equal(t, snapshot, processes, string(a))
	}
}

func randomProcesses(r *rand.Rand, n int) []core.Process {
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			ServiceTime: r.Intn(7),
			ArrivalTime: r.Intn(15),
			Priority:    r.Intn(4),
		}
	}
	return processes
}

func TestSchedulingInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		processes := randomProcesses(r, 1+r.Intn(12))
		byID := make(map[string]core.Process, len(processes))
		for _, p := range processes {
			byID[p.ID] = p
		}

		for _, a := range Algorithms {
			for _, quantum := range []int{1, 2, 3} {
				if a != RoundRobin && quantum != 1 {
					continue
				}
				opts := Options{TimeQuantum: quantum}
				timeline, err := Schedule(a, processes, opts)
				require.NoError(t, err)

				again, err := Schedule(a, processes, opts)
				require.NoError(t, err)
				require.Equal(t, timeline, again, "%s is not deterministic", a)

				var all []core.Segment
				seen := make(map[string]bool)
				for _, entry := range timeline {
					p := byID[entry.Process]
					seen[p.ID] = true
					require.Equal(t, p.ServiceTime, entry.Busy(), "%s: work conservation for %s", a, p.ID)

					for i, s := range entry.Segments {
						require.Greater(t, s.End, s.Start, "%s: empty segment", a)
						require.GreaterOrEqual(t, s.Start, p.ArrivalTime, "%s: %s started early", a, p.ID)
						if i > 0 {
							require.GreaterOrEqual(t, s.Start, entry.Segments[i-1].End)
							if a == ShortestRemainingTimeFirst {
								require.NotEqual(t, s.Start, entry.Segments[i-1].End, "srtf left an unmerged run")
							}
						}
						if a == RoundRobin && i < len(entry.Segments)-1 {
							require.LessOrEqual(t, s.Duration(), quantum)
						}
					}
					if !a.Preemptive() {
						require.Len(t, entry.Segments, 1, "%s split %s", a, p.ID)
					}
					all = append(all, entry.Segments...)
				}

				for _, p := range processes {
					if p.ServiceTime > 0 {
						require.True(t, seen[p.ID], "%s dropped %s", a, p.ID)
					}
				}

				sort.Slice(all, func(i, j int) bool { return all[i].Start < all[j].Start })
				for i := 1; i < len(all); i++ {
					require.GreaterOrEqual(t, all[i].Start, all[i-1].End, "%s: overlapping segments", a)
				}

				for i := 1; i < len(timeline); i++ {
					require.True(t, core.LessProcessID(timeline[i-1].Process, timeline[i].Process))
				}
			}
		}
	}
}
