// Command alcq loads a scenario file describing a TBox/ABox and runs one
// of the four external decision procedures spec §6 names against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "alcq",
		Short:         "ALCQ tableau decision procedure",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("format", "text", "output format: text or json")
	cmd.PersistentFlags().Int("workers", 0, "parallel branch-exploration worker count (0 = the scenario's workers value, sequential if that is unset)")
	cmd.AddCommand(newConsistentCmd(), newSubsumesCmd())
	return cmd
}
