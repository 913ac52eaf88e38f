package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <left.csv> <right.csv>",
	Short: "Show a unified text diff between two snapshots",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	body, err := svc.SnapshotDiff(args[0], args[1])
	if err != nil {
		return err
	}
	if body == "" {
		fmt.Fprintln(os.Stdout, "snapshots are identical")
		return nil
	}
	fmt.Fprint(os.Stdout, body)
	return nil
}
