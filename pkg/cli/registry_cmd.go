package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newUsersCmd(output *string) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage registry users",
	}

	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			return printNames(*output, "USER", names)
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.AddUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("User %q added\n", args[0])
			return nil
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a user (fails if duties reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("User %q deleted\n", args[0])
			return nil
		},
	})

	return usersCmd
}

func newTasksCmd(output *string) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage registry tasks",
	}

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := client.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			return printNames(*output, "TASK", names)
		},
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Register a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.AddTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Task %q added\n", args[0])
			return nil
		},
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a task (fails if duties reference it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Task %q deleted\n", args[0])
			return nil
		},
	})

	return tasksCmd
}

func printNames(output, header string, names []string) error {
	if output == "json" {
		return printJSON(os.Stdout, names)
	}
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	return printTable(os.Stdout, []string{header}, rows)
}
