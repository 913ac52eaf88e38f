package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var gifsCmd = &cobra.Command{
	Use:   "gifs",
	Short: "List GIF animations, most current first",
	Long: `Lists the animations in freshness order: filenames carrying a valid
YYYYMMDD token rank by that date; the rest rank by modification time
behind every dated file. The first entry is the current animation.`,
	RunE: runGifs,
}

func init() {
	rootCmd.AddCommand(gifsCmd)
}

func runGifs(_ *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	names := svc.ListAnimationNames()
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no animations found")
		return nil
	}
	for i, n := range names {
		if i == 0 {
			fmt.Fprintf(os.Stdout, "%s\t(current)\n", n)
			continue
		}
		fmt.Fprintln(os.Stdout, n)
	}
	return nil
}
