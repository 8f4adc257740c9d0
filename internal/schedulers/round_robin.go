package schedulers

import (
	"log/slog"

	"os-scheduler/internal/core"
)

const DefaultTimeQuantum = 2

// ScheduleRoundRobin hands out slices of at most timeQuantum units. Processes
// are ordered by arrival; at every decision point the arrived, unfinished
// subset is rebuilt and the next process is available[turn % len(available)],
// where turn counts dispatches so far. The rotation pointer is therefore
// relative to the current subset and shifts as processes arrive or finish.
// Slices are never merged, even when contiguous.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.Timeline {
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}

	order := arrivalOrder(processes)
	remaining := make([]int, len(order))
	unfinished := 0
	for k, i := range order {
		remaining[k] = processes[i].ServiceTime
		if remaining[k] > 0 {
			unfinished++
		}
	}

	cpu := core.NewCPU()
	available := make([]int, 0, len(order))
	turn := 0
	for unfinished > 0 {
		available = available[:0]
		nextArrival := -1
		for k, i := range order {
			if remaining[k] == 0 {
				continue
			}
			arrival := processes[i].ArrivalTime
			if arrival <= cpu.Clock() {
				available = append(available, k)
			} else if nextArrival < 0 || arrival < nextArrival {
				nextArrival = arrival
			}
		}
		if len(available) == 0 {
			cpu.AdvanceTo(nextArrival)
			continue
		}

		k := available[turn%len(available)]
		p := processes[order[k]]
		slice := min(timeQuantum, remaining[k])
		segment := cpu.Execute(p.ID, slice)
		slog.Debug("rr dispatch", "process", p.ID, "turn", turn, "start", segment.Start, "end", segment.End)

		remaining[k] -= slice
		if remaining[k] == 0 {
			unfinished--
		}
		turn++
	}
	return cpu.Timeline(false)
}
