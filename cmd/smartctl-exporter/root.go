package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state from leaking between executions.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "smartctl-exporter",
		Short: "Parse smartctl output and export it as Prometheus metrics",
		Long: `smartctl-exporter parses the text printed by smartctl -a and
smartctl -l scterc into structured reports.

Captures can be read from files named smartctl_-a_.dev.<name> and
smartctl_-l_scterc_.dev.<name>, or collected live by running smartctl.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newSCTERCCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smartctl-exporter %s (commit %s, built %s by %s)\n",
				version, commit, buildTime, buildBy)
		},
	}
}
