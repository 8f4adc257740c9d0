package schedulers

import (
	"container/heap"
	"log/slog"

	"os-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: whenever the CPU frees up it
// picks the arrived process with the smallest service time.
func ScheduleShortestJobFirst(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, "sjf", func(p core.Process) int {
		return p.ServiceTime
	})
}

// SchedulePriority is non-preemptive; lower priority values run first.
func SchedulePriority(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, "priority", func(p core.Process) int {
		return p.Priority
	})
}

// scheduleNonPreemptive selects the smallest key among arrived processes and
// runs it to completion. Ties go to the earliest process in the input. When
// nothing has arrived the clock jumps straight to the next arrival.
func scheduleNonPreemptive(processes []core.Process, name string, key func(core.Process) int) core.Timeline {
	cpu := core.NewCPU()
	queue := newAdmission(processes)

	for queue.pending() {
		queue.admit(cpu.Clock(), key)
		if queue.ready.Len() == 0 {
			cpu.AdvanceTo(queue.nextArrival())
			continue
		}

		item := heap.Pop(&queue.ready).(*readyItem)
		p := processes[item.index]
		segment := cpu.Execute(p.ID, p.ServiceTime)
		slog.Debug(name+" dispatch", "process", p.ID, "key", item.key, "start", segment.Start, "end", segment.End)
	}
	return cpu.Timeline(false)
}
