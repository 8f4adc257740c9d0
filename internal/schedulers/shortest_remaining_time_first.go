package schedulers

import (
	"container/heap"

	"os-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst re-evaluates the choice every time unit and
// runs the arrived process with the least remaining work, earliest input on
// ties. Unit slices are merged into maximal contiguous runs afterwards.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.Timeline {
	cpu := core.NewCPU()
	queue := newAdmission(processes)
	remaining := func(p core.Process) int { return p.ServiceTime }

	for queue.pending() {
		queue.admit(cpu.Clock(), remaining)
		if queue.ready.Len() == 0 {
			// No preemption decision can happen before the next arrival.
			cpu.AdvanceTo(queue.nextArrival())
			continue
		}

		item := heap.Pop(&queue.ready).(*readyItem)
		if item.key <= 0 {
			continue
		}
		cpu.Execute(processes[item.index].ID, 1)
		item.key--
		if item.key > 0 {
			heap.Push(&queue.ready, item)
		}
	}
	return cpu.Timeline(true)
}
