package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var comparisonOnly bool

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List CSV snapshots and mark the current one",
	RunE:  runSnapshots,
}

func init() {
	snapshotsCmd.Flags().BoolVar(&comparisonOnly, "comparison", false, "list only snapshots available for comparison (everything but the current one)")
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshots(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	latest, haveLatest := svc.ResolveLatestSnapshot()

	names := svc.ListSnapshotNames()
	if comparisonOnly {
		names = svc.ComparisonSnapshotNames()
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no snapshots found")
		return nil
	}
	for _, n := range names {
		if haveLatest && n == latest.Name {
			fmt.Fprintf(os.Stdout, "%s\t(current, modified %s)\n", n, latest.ModTime.Format("2006-01-02 15:04:05"))
			continue
		}
		fmt.Fprintln(os.Stdout, n)
	}
	return nil
}
