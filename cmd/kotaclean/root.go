package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kotaclean/pkg/core"
)

func newRootCommand() *cobra.Command {
	var (
		everything bool
		dryRun     bool
		assumeYes  bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "kotaclean",
		Short: "Reset the application workspace",
		Long: `Reset the application workspace to a pristine checkout.

By default only development and build artifacts are removed: bytecode
caches, build output, test and lint caches, .env files, logs, editor
leftovers, temp files and virtual environments. With --everything the
user data directories are removed as well, after confirmation.

Must be run from the project root (the directory holding app.py and
flowsettings.py). Paths matching patterns in an optional .cleankeep
file are never deleted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				return err
			}

			mode := core.ModeSafe
			if everything {
				mode = core.ModeEverything
			}

			cleaner := core.NewCleaner(core.Config{
				Root:      root,
				Mode:      mode,
				DryRun:    dryRun,
				AssumeYes: assumeYes,
			}, core.SetupLogger(verbose))

			report, err := cleaner.Run()
			if errors.Is(err, core.ErrDeclined) {
				fmt.Println("Aborted. Nothing was deleted.")
				return nil
			}
			if err != nil {
				return err
			}

			core.WriteSummary(os.Stdout, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&everything, "everything", false, "Also remove user data (documents, web temp files, vector storage)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be deleted without deleting anything")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the everything mode confirmation prompt")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every removed entry")

	return cmd
}
