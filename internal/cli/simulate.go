package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/loader"
	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		algorithm string
		quantum   int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "simulate [process-file]",
		Short: "Simulate a process set and print timelines and statistics",
		Long: `Simulate a process set read from a CSV, YAML, or JSON file.
CSV rows are id,service_time,arrival_time[,priority]. Without a file the
sample set P1(5,0,3), P2(3,1,1), P3(8,2,2) is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processes := loader.DefaultProcesses()
			if len(args) == 1 {
				var err error
				if processes, err = loader.LoadFile(args[0]); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("quantum") {
				quantum = opts.config.RoundRobinTimeQuantum
			}

			results, err := simulate(processes, algorithm, schedulers.Options{TimeQuantum: quantum})
			if err != nil {
				return err
			}
			opts.logger.Debug("simulation finished", "processes", len(processes), "algorithms", len(results))

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table":
				for _, r := range results {
					report.WriteResult(out, r)
				}
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.FromResults("", results))
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "algorithm to run (fifo, sjf, priority, srtf, rr, all)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "round robin time quantum")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}

func simulate(processes []core.Process, algorithm string, opts schedulers.Options) ([]schedulers.Result, error) {
	if strings.EqualFold(algorithm, "all") {
		return schedulers.RunAll(processes, opts)
	}

	a, err := schedulers.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	result, err := schedulers.Run(a, processes, opts)
	if err != nil {
		return nil, err
	}
	return []schedulers.Result{result}, nil
}
