package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stockfilter/internal/fsio"
)

var reconcileOut string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <left.csv> <right.csv>",
	Short: "Inner-join two snapshots on the key column and report the overlap",
	Long: `Joins two snapshots on the configured key column. The matched rows
carry the union of both schemas; columns present in both inputs are
disambiguated with _left/_right suffixes, the key column appears once.
Keys present on only one side are reported as diagnostics.`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileOut, "out", "o", "", "write the matched rows as CSV to this path (atomic write)")
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(_ *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	res, err := svc.Reconcile(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "matched rows: %d\n", res.MatchedCount)
	if len(res.LeftOnly) > 0 {
		fmt.Fprintf(os.Stdout, "only in %s: %s\n", args[0], strings.Join(res.LeftOnly, ", "))
	}
	if len(res.RightOnly) > 0 {
		fmt.Fprintf(os.Stdout, "only in %s: %s\n", args[1], strings.Join(res.RightOnly, ", "))
	}

	if reconcileOut != "" {
		data, err := res.Matched.RenderCSV()
		if err != nil {
			return fmt.Errorf("failed to render matched rows: %w", err)
		}
		if err := fsio.WriteAtomic(reconcileOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", reconcileOut, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", reconcileOut)
	}
	return nil
}
