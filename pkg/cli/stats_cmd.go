package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newStatsCmd(output *string) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate views over the duty log",
	}

	statsCmd.AddCommand(&cobra.Command{
		Use:   "totals",
		Short: "Duty count per user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			totals, err := client.TotalPerUser(cmd.Context())
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(os.Stdout, totals)
			}
			rows := make([][]string, 0, len(totals))
			for _, t := range totals {
				rows = append(rows, []string{t.User, strconv.FormatInt(t.Total, 10)})
			}
			return printTable(os.Stdout, []string{"USER", "TOTAL"}, rows)
		},
	})

	statsCmd.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Duty count per user per UTC date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := client.PerUserPerDate(cmd.Context())
			if err != nil {
				return err
			}
			if *output == "json" {
				return printJSON(os.Stdout, counts)
			}
			rows := make([][]string, 0, len(counts))
			for _, c := range counts {
				rows = append(rows, []string{c.Date, c.User, strconv.FormatInt(c.Count, 10)})
			}
			return printTable(os.Stdout, []string{"DATE", "USER", "COUNT"}, rows)
		},
	})

	return statsCmd
}

// newBoardCmd fetches the registry lists and both aggregate views in
// parallel and prints a one-screen summary — the CLI twin of the board page.
func newBoardCmd(output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "One-screen summary of the duty board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				users  []string
				tasks  []string
				totals []UserTotal
				counts []UserDateCount
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) { users, err = client.ListUsers(ctx); return err })
			g.Go(func() (err error) { tasks, err = client.ListTasks(ctx); return err })
			g.Go(func() (err error) { totals, err = client.TotalPerUser(ctx); return err })
			g.Go(func() (err error) { counts, err = client.PerUserPerDate(ctx); return err })
			if err := g.Wait(); err != nil {
				return err
			}

			if *output == "json" {
				return printJSON(os.Stdout, map[string]any{
					"users":             users,
					"tasks":             tasks,
					"total_per_user":    totals,
					"per_user_per_date": counts,
				})
			}

			rows := make([][]string, 0, len(totals))
			for _, t := range totals {
				rows = append(rows, []string{t.User, strconv.FormatInt(t.Total, 10)})
			}
			if err := printTable(os.Stdout, []string{"USER", "TOTAL"}, rows); err != nil {
				return err
			}

			rows = rows[:0]
			for _, c := range counts {
				rows = append(rows, []string{c.Date, c.User, strconv.FormatInt(c.Count, 10)})
			}
			return printTable(os.Stdout, []string{"DATE", "USER", "COUNT"}, rows)
		},
	}
}
