package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"os-scheduler/internal/schedulers"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available scheduling algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Algorithm", "Preemptive"})
			for _, a := range schedulers.Algorithms {
				preemptive := "no"
				if a.Preemptive() {
					preemptive = "yes"
				}
				table.Append([]string{string(a), a.Title(), preemptive})
			}
			table.Render()
			return nil
		},
	}
}
