package schedulers

import (
	"log/slog"

	"os-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving at the same time keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) core.Timeline {
	cpu := core.NewCPU()
	for _, i := range arrivalOrder(processes) {
		p := processes[i]
		cpu.AdvanceTo(p.ArrivalTime)
		segment := cpu.Execute(p.ID, p.ServiceTime)
		slog.Debug("fifo dispatch", "process", p.ID, "start", segment.Start, "end", segment.End)
	}
	return cpu.Timeline(false)
}
