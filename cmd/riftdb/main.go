// Command riftdb is the CLI collaborator spec.md §6 describes as "out of
// core scope": a thin wrapper over pkg/riftdb that gives set/get/rm
// subcommands the exit codes and messaging the original kvs CLI had
// (non-normative for the engine itself).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nilotpal-dev/riftdb/pkg/logger"
	"github.com/nilotpal-dev/riftdb/pkg/options"
	"github.com/nilotpal-dev/riftdb/pkg/riftdb"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "riftdb",
		Short:         "Embedded log-structured key-value store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", ".", "data directory")

	open := func() (*riftdb.DB, error) {
		return riftdb.Open(dataDir, options.WithLogger(logger.Nop()))
	}

	root.AddCommand(newSetCommand(open))
	root.AddCommand(newGetCommand(open))
	root.AddCommand(newRemoveCommand(open))
	return root
}

func newSetCommand(open func() (*riftdb.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "set <KEY> <VALUE>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return reportError(cmd, err)
			}
			defer db.Close()

			if err := db.Set(args[0], args[1]); err != nil {
				return reportError(cmd, err)
			}
			return nil
		},
	}
}

func newGetCommand(open func() (*riftdb.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get <KEY>",
		Short: "Get the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return reportError(cmd, err)
			}
			defer db.Close()

			value, ok, err := db.Get(args[0])
			if err != nil {
				return reportError(cmd, err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Key not found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newRemoveCommand(open func() (*riftdb.DB, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <KEY>",
		Short: "Remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return reportError(cmd, err)
			}
			defer db.Close()

			if err := db.Remove(args[0]); err != nil {
				if riftdb.IsKeyNotFound(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Key not found")
					return err
				}
				return reportError(cmd, err)
			}
			return nil
		},
	}
}

// reportError prints the "Error: <message>" form spec.md §6 prescribes
// for every failure other than a missing key, and returns err unchanged
// so Execute fails and main exits 1. SilenceErrors and SilenceUsage on
// the root command keep cobra from printing the error again or the usage.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
	return err
}
