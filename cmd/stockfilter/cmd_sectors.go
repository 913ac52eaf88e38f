package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors [symbol...]",
	Short: "Print the sector reference table (SPDR sector ETFs)",
	RunE:  runSectors,
}

func init() {
	rootCmd.AddCommand(sectorsCmd)
}

func runSectors(_ *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	var symbols []string
	if len(args) > 0 {
		symbols = args
	}
	for _, row := range svc.SectorReference(symbols) {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", row.Symbol, row.Sector)
	}
	return nil
}
