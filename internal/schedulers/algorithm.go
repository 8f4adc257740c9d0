package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"os-scheduler/internal/core"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fifo"
	ShortestJobFirst           Algorithm = "sjf"
	Priority                   Algorithm = "priority"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
)

// Algorithms lists every algorithm in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	Priority,
	ShortestRemainingTimeFirst,
	RoundRobin,
}

var aliases = map[string]Algorithm{
	"fcfs":        FirstComeFirstServe,
	"round_robin": RoundRobin,
	"roundrobin":  RoundRobin,
}

func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	if a, ok := aliases[name]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First In, First Out"
	case ShortestJobFirst:
		return "Shortest Job First"
	case Priority:
		return "Priority"
	case ShortestRemainingTimeFirst:
		return "Shortest Remaining Time First"
	case RoundRobin:
		return "Round Robin"
	}
	return string(a)
}

func (a Algorithm) Preemptive() bool {
	return a == ShortestRemainingTimeFirst || a == RoundRobin
}

type Options struct {
	// TimeQuantum applies to Round Robin only. Zero selects DefaultTimeQuantum.
	TimeQuantum int
}

func (o Options) quantum() int {
	if o.TimeQuantum == 0 {
		return DefaultTimeQuantum
	}
	return o.TimeQuantum
}

// Schedule dispatches to the algorithm without validating the input.
func Schedule(a Algorithm, processes []core.Process, opts Options) (core.Timeline, error) {
	switch a {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case Priority:
		return SchedulePriority(processes), nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes), nil
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.quantum()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// Result is one simulation together with its derived statistics.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Timeline    core.Timeline
	Stats       []ProcessStats
	Averages    AverageStats
	Summary     Summary
}

// Run validates the input, simulates one algorithm and computes its statistics.
func Run(a Algorithm, processes []core.Process, opts Options) (Result, error) {
	if err := validate(processes, opts); err != nil {
		return Result{}, err
	}
	return run(a, processes, opts)
}

// RunAll simulates every algorithm concurrently over the same input. Results
// follow the order of Algorithms.
func RunAll(processes []core.Process, opts Options) ([]Result, error) {
	if err := validate(processes, opts); err != nil {
		return nil, err
	}

	results := make([]Result, len(Algorithms))
	errs := make([]error, len(Algorithms))
	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, a := range Algorithms {
		go func(i int, a Algorithm) {
			defer wg.Done()
			results[i], errs[i] = run(a, processes, opts)
		}(i, a)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func validate(processes []core.Process, opts Options) error {
	if err := core.Validate(processes); err != nil {
		return err
	}
	return core.ValidateQuantum(opts.quantum())
}

func run(a Algorithm, processes []core.Process, opts Options) (Result, error) {
	timeline, err := Schedule(a, processes, opts)
	if err != nil {
		return Result{}, err
	}

	stats := ComputeStats(timeline, processes)
	result := Result{
		Algorithm: a,
		Timeline:  timeline,
		Stats:     stats,
		Averages:  averageOf(stats),
		Summary:   ComputeSummary(timeline),
	}
	if a == RoundRobin {
		result.TimeQuantum = opts.quantum()
	}
	return result, nil
}
