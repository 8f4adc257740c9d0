package requests

import "os-scheduler/internal/core"

type Process struct {
	ID          string `json:"id" yaml:"id"`
	ServiceTime int    `json:"service_time" yaml:"service_time"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// ScheduleRequest is both the HTTP request body and the YAML/JSON process file layout.
type ScheduleRequest struct {
	Processes   []Process `json:"processes" yaml:"processes"`
	TimeQuantum int       `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

func (r ScheduleRequest) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		processes = append(processes, core.Process{
			ID:          p.ID,
			ServiceTime: p.ServiceTime,
			ArrivalTime: p.ArrivalTime,
			Priority:    p.Priority,
		})
	}
	return processes
}

func FromProcesses(processes []core.Process) ScheduleRequest {
	request := ScheduleRequest{Processes: make([]Process, 0, len(processes))}
	for _, p := range processes {
		request.Processes = append(request.Processes, Process{
			ID:          p.ID,
			ServiceTime: p.ServiceTime,
			ArrivalTime: p.ArrivalTime,
			Priority:    p.Priority,
		})
	}
	return request
}
