package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProcess = errors.New("invalid process")
	ErrInvalidQuantum = errors.New("invalid time quantum")
)

// Process describes one schedulable job. Lower Priority values win.
type Process struct {
	ID          string
	ServiceTime int
	ArrivalTime int
	Priority    int
}

// Validate rejects a process set the schedulers cannot simulate faithfully:
// empty or duplicated ids and negative durations.
func Validate(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("%w: entry %d has an empty id", ErrInvalidProcess, i+1)
		}
		if p.ServiceTime < 0 {
			return fmt.Errorf("%w: %s has negative service time %d", ErrInvalidProcess, p.ID, p.ServiceTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: %d, must be positive", ErrInvalidQuantum, quantum)
	}
	return nil
}

// TotalServiceTime is the sum of all service times.
func TotalServiceTime(processes []Process) int {
	total := 0
	for _, p := range processes {
		total += p.ServiceTime
	}
	return total
}
