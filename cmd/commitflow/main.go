package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"commitflow/internal/backup"
	"commitflow/internal/config"
	"commitflow/internal/storage"
	"commitflow/internal/tracker"
	"commitflow/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "commitflow",
	Short: "Daily learning log, tasks, and streak tracker",
	Long:  `Commitflow records daily "commits" (what you learned or built), a todo list, and derives your streak and activity heatmap from them.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, t, mgr, cleanup := mustOpen()
		defer cleanup()

		// Recompute streak and activity on startup so yesterday's
		// rollover is applied before anything renders.
		if _, err := t.Recompute(); err != nil {
			logError(err)
		}

		if err := tui.Run(t, mgr, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of commits, tasks, and streak",
	Run: func(cmd *cobra.Command, args []string) {
		_, t, _, cleanup := mustOpen()
		defer cleanup()

		if _, err := t.Recompute(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		summary, err := t.Summarize()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("User: %s\n", summary.Username)
		fmt.Printf("Commits: %d\n", summary.TotalCommits)
		fmt.Printf("Tasks: %d (%d completed)\n", summary.TotalTasks, summary.CompletedTasks)
		fmt.Printf("Current streak: %d\n", summary.Streak)
		fmt.Printf("Longest streak: %d\n", summary.LongestStreak)
		fmt.Printf("Active days: %d\n", summary.ActiveDays)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, _, mgr, cleanup := mustOpen()
		defer cleanup()

		data, err := mgr.Export()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Printf("Exported to %s\n", args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON backup",
	Long: `Import a JSON backup produced by export.

Only the fields present in the file are assigned; anything missing is
left untouched, so partial backups are safe to import.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, _, mgr, cleanup := mustOpen()
		defer cleanup()

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			os.Exit(1)
		}
		if err := mgr.Import(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Import complete. Streak and activity recomputed.")
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all commits, tasks, streak and activity data",
	Long:  `Deletes commits, tasks, streak progress, activity history and playlists. Your name and theme are kept.`,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Fprintln(os.Stderr, "This permanently deletes all tracked data. Re-run with --force to confirm.")
			os.Exit(1)
		}

		_, _, mgr, cleanup := mustOpen()
		defer cleanup()

		if err := mgr.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All data has been reset.")
	},
}

var playlistCmd = &cobra.Command{
	Use:   "playlist",
	Short: "Manage focus playlist links shown on the dashboard",
}

var playlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved playlists",
	Run: func(cmd *cobra.Command, args []string) {
		_, t, _, cleanup := mustOpen()
		defer cleanup()

		playlists, err := t.Playlists.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(playlists) == 0 {
			fmt.Println("No playlists saved.")
			return
		}
		for i, url := range playlists {
			fmt.Printf("%d. %s\n", i+1, url)
		}
	},
}

var playlistAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Save a playlist link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, t, _, cleanup := mustOpen()
		defer cleanup()

		if err := t.Playlists.Add(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Playlist saved.")
	},
}

var playlistRemoveCmd = &cobra.Command{
	Use:   "remove <number>",
	Short: "Remove a playlist by its list number",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a number\n", args[0])
			os.Exit(1)
		}

		_, t, _, cleanup := mustOpen()
		defer cleanup()

		if err := t.Playlists.Delete(n - 1); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Playlist removed.")
	},
}

// mustOpen loads config, opens the store, and wires the tracker and
// backup manager, exiting on any failure.
func mustOpen() (*config.Config, *tracker.Tracker, *backup.Manager, func()) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving database path: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	t := tracker.New(store)
	mgr := backup.NewManager(store, t)
	return cfg, t, mgr, func() { store.Close() }
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")

	playlistCmd.AddCommand(playlistListCmd)
	playlistCmd.AddCommand(playlistAddCmd)
	playlistCmd.AddCommand(playlistRemoveCmd)

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(playlistCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logError(err error) {
	logPath, pathErr := config.ErrorLogPath()
	if pathErr != nil {
		return
	}

	f, fileErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if fileErr != nil {
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "[startup] %v\n", err)
}
