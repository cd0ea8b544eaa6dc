package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newDutyCmd(output *string) *cobra.Command {
	dutyCmd := &cobra.Command{
		Use:   "duty",
		Short: "Log and list duties",
	}

	var timestamp string
	logCmd := &cobra.Command{
		Use:   "log <user> <task>",
		Short: "Log a duty for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts := timestamp
			if ts == "" {
				ts = time.Now().Format(time.RFC3339)
			}
			if err := client.AddDuty(cmd.Context(), args[0], args[1], ts); err != nil {
				return err
			}
			fmt.Printf("Duty logged: %s did %s at %s\n", args[0], args[1], ts)
			return nil
		},
	}
	logCmd.Flags().StringVar(&timestamp, "at", "", "Timestamp (RFC 3339, default: now)")
	dutyCmd.AddCommand(logCmd)

	dutyCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all duties, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			duties, err := client.ListDuties(cmd.Context())
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(os.Stdout, duties)
			}
			rows := make([][]string, 0, len(duties))
			for _, d := range duties {
				rows = append(rows, []string{d.User, d.Task, d.Timestamp.Format(time.RFC3339)})
			}
			return printTable(os.Stdout, []string{"USER", "TASK", "TIMESTAMP"}, rows)
		},
	})

	return dutyCmd
}
