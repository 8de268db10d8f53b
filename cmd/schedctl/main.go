// schedctl is a local companion CLI for inspecting and managing the
// schedule database directly, without going through the API.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/schedule/repository"
	"personal-task-scheduler/internal/schedule/repository/sqlite"
	"personal-task-scheduler/pkg/log"
)

var dbPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedctl",
		Short: "Inspect and manage the local task schedule",
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "scheduler.db", "database path")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(completeCmd())
	rootCmd.AddCommand(removeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getRepo() (repository.ScheduleRepository, *sql.DB, error) {
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	logger := log.Init(log.ZapConfig{Level: "warn", Mode: "production", Encoding: "console"})
	return sqlite.New(db, logger), db, nil
}

func listCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list [date]",
		Short: "List scheduled tasks for a day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := model.DateOf(time.Now())
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
				}
				date = parsed
			}

			repo, db, err := getRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			tasks, err := repo.List(context.Background(), repository.ListTasksOptions{
				Date:             &date,
				IncludeCompleted: all,
			})
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Printf("Nothing scheduled on %s\n", date.Format("2006-01-02"))
				return nil
			}

			fmt.Printf("Schedule for %s:\n", date.Format("2006-01-02"))
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %s-%s  %-40s  %s\n",
					mark,
					t.Slot.Start.Format("15:04"),
					t.Slot.End.Format("15:04"),
					truncate(t.Task.Description, 40),
					t.ID[:8],
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include completed tasks")
	return cmd
}

func completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a scheduled task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, db, err := getRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := resolveID(repo, args[0])
			if err != nil {
				return err
			}
			if err := repo.MarkComplete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Completed %s\n", id[:8])
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a scheduled task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, db, err := getRepo()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := resolveID(repo, args[0])
			if err != nil {
				return err
			}
			if err := repo.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", id[:8])
			return nil
		},
	}
}

// resolveID accepts a full task id or an unambiguous prefix.
func resolveID(repo repository.ScheduleRepository, arg string) (string, error) {
	if _, err := repo.Get(context.Background(), arg); err == nil {
		return arg, nil
	}

	tasks, err := repo.List(context.Background(), repository.ListTasksOptions{IncludeCompleted: true})
	if err != nil {
		return "", err
	}

	var match string
	for _, t := range tasks {
		if len(arg) > 0 && len(t.ID) >= len(arg) && t.ID[:len(arg)] == arg {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task matches %q", arg)
	}
	return match, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
