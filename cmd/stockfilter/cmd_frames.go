package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stockfilter/internal/dash"
	"stockfilter/internal/fsio"
)

var framesExportDir string

var framesCmd = &cobra.Command{
	Use:   "frames [animation.gif]",
	Short: "Decode an animation into normalized frames",
	Long: `Decodes the named animation (or the current one when no name is
given) into 8-bit RGB frames on the animation's canvas size. With
--export the frames are written out as numbered PNG files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().StringVar(&framesExportDir, "export", "", "write each frame as PNG into this directory")
	rootCmd.AddCommand(framesCmd)
}

func runFrames(_ *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		latest, ok := svc.ResolveLatestAnimation()
		if !ok {
			fmt.Fprintln(os.Stdout, "no animations found")
			return nil
		}
		name = latest.Name
	}

	res := svc.DecodeAnimation(name)
	switch res.State {
	case dash.DecodeAbsent:
		return fmt.Errorf("animation %q does not exist", name)
	case dash.DecodeFailed:
		return fmt.Errorf("failed to decode %q: %s", name, res.Reason)
	}

	seq := res.Frames()
	fmt.Fprintf(os.Stdout, "%s: %d frames, %dx%d\n", name, len(seq), seq[0].W, seq[0].H)

	if framesExportDir == "" {
		return nil
	}
	base := name[:len(name)-len(filepath.Ext(name))]
	for i, f := range seq {
		data, err := f.EncodePNG()
		if err != nil {
			return fmt.Errorf("failed to encode frame %d: %w", i, err)
		}
		out := filepath.Join(framesExportDir, fmt.Sprintf("%s_frame_%03d.png", base, i))
		if err := fsio.WriteAtomic(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
	}
	fmt.Fprintf(os.Stdout, "wrote %d frames to %s\n", len(seq), framesExportDir)
	return nil
}
