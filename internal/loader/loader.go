// Package loader reads process sets from CSV, YAML, or JSON files.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// DefaultProcesses is the sample set used when no file is given.
func DefaultProcesses() []core.Process {
	return []core.Process{
		{ID: "P1", ServiceTime: 5, ArrivalTime: 0, Priority: 3},
		{ID: "P2", ServiceTime: 3, ArrivalTime: 1, Priority: 1},
		{ID: "P3", ServiceTime: 8, ArrivalTime: 2, Priority: 2},
	}
}

// LoadFile picks a decoder from the file extension and validates the result.
func LoadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	var processes []core.Process
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		processes, err = LoadCSV(f)
	case ".yaml", ".yml":
		processes, err = LoadYAML(f)
	case ".json":
		processes, err = LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := core.Validate(processes); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return processes, nil
}

// LoadCSV reads rows of id,service_time,arrival_time[,priority]. A first row
// whose service column is not a number is treated as a header.
func LoadCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 1 && !isInteger(row[1]) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3 or 4", core.ErrInvalidProcess, i+1, len(row))
		}

		p := core.Process{ID: strings.TrimSpace(row[0])}
		fields := []*int{&p.ServiceTime, &p.ArrivalTime, &p.Priority}
		for j, raw := range row[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %v", core.ErrInvalidProcess, i+1, j+2, err)
			}
			*fields[j] = n
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func LoadYAML(r io.Reader) ([]core.Process, error) {
	var request requests.ScheduleRequest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	return request.ToProcesses(), nil
}

func LoadJSON(r io.Reader) ([]core.Process, error) {
	var request requests.ScheduleRequest
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return request.ToProcesses(), nil
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}
