package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/young1lin/gridsheet/internal/config"
	"github.com/young1lin/gridsheet/internal/grid"
	"github.com/young1lin/gridsheet/internal/store"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitFunc(1)
	}
}

func newRootCmd() *cobra.Command {
	deps := &AppDependencies{
		WatcherCreator: func(path string) (config.WatcherInterface, error) {
			return config.NewWatcher(path)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}

	cmd := &cobra.Command{
		Use:           "gridsheet",
		Short:         "Browse and edit records in a terminal grid",
		Long:          "gridsheet shows records in a filterable, sortable grid with resizable columns and inline editing.\nEdits live for the session only.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.ConfigPath == "" {
				deps.ConfigPath = config.Path()
			}
			return run(deps)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&deps.ConfigPath, "config", "c", "", "config file (default "+config.Path()+")")
	flags.StringVar(&deps.SeedPath, "seed", "", "SQLite seed database to load records from")
	flags.StringVarP(&deps.Filter, "filter", "f", "", "initial filter: all, active or inactive")
	flags.StringVar(&deps.LogFile, "log-file", "", "log file (default "+config.DefaultLogFile()+")")
	flags.BoolVar(&deps.NoWatch, "no-watch", false, "do not reload the config file when it changes")

	cmd.AddCommand(newSeedCmd(store.Open), newVersionCmd())
	return cmd
}

func newSeedCmd(openDB func(string) (*store.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <out.db>",
		Short: "Write the sample records to a SQLite seed database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := writeSeed(openDB, args[0], grid.SampleRecords())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", n, args[0])
			return nil
		},
	}
}

// writeSeed stores records in a new or empty seed database
func writeSeed(openDB func(string) (*store.DB, error), path string, records []grid.Record) (int, error) {
	db, err := openDB(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed database: %w", err)
	}
	defer db.Close()

	existing, err := db.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	if existing > 0 {
		return 0, fmt.Errorf("%s already holds %d records", path, existing)
	}

	if err := db.InsertRecords(records...); err != nil {
		return 0, fmt.Errorf("failed to write records: %w", err)
	}
	return len(records), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridsheet %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}
