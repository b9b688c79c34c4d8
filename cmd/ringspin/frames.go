package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"ringspin/pkg/config"
	"ringspin/pkg/cursor"
	"ringspin/pkg/gui/canvas"
	"ringspin/pkg/gui/layout"
	"ringspin/pkg/gui/raster"
	"ringspin/pkg/spinner"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	defaultFrameCols = 20
	defaultFrameRows = 10
	// spinnerRevolution is the number of ticks in one full turn.
	spinnerRevolution = 10
)

type frameOptions struct {
	cols  int
	rows  int
	count int
}

// renderFrames drives the widget with a manual timer and writes one braille
// frame per tick, separated by blank lines.
func renderFrames(w io.Writer, prefs config.SpinnerState, opts frameOptions) error {
	if opts.cols <= 0 || opts.rows <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", opts.cols, opts.rows)
	}
	if opts.count < 0 {
		return fmt.Errorf("frame count must not be negative, got %d", opts.count)
	}

	scene := canvas.NewScene()
	scene.SetColor(spinner.Color(prefs.Color))
	timer := &spinner.ManualTimer{}
	widget := spinner.New(scene, timer, &cursor.Recorder{}, prefs.Options()...)
	scene.Bind(widget)
	defer widget.Close()

	width := layout.SquareUnits(opts.cols, opts.rows)
	widget.Resize(float64(width), float64(width))
	widget.OnBecomeVisible()

	// The square is drawn at its own size and centred in the frame.
	cols, rows := layout.CellsFor(width)
	frames := make([]string, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		square := scene.Render(cols, rows)
		frames = append(frames, lipgloss.Place(opts.cols, opts.rows, lipgloss.Center, lipgloss.Center, square))
		timer.Fire(1)
	}
	if len(frames) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(frames, "\n\n")+"\n")
	return err
}

func newFramesCmd(flags *spinnerFlags) *cobra.Command {
	opts := frameOptions{}
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print spinner frames without the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := flags.resolve()
			if err != nil {
				return err
			}
			return renderFrames(cmd.OutOrStdout(), prefs, opts)
		},
	}
	cmd.Flags().IntVar(&opts.cols, "cols", defaultFrameCols, "frame width in terminal cells")
	cmd.Flags().IntVar(&opts.rows, "rows", defaultFrameRows, "frame height in terminal cells")
	cmd.Flags().IntVarP(&opts.count, "count", "n", spinnerRevolution, "number of frames (one per tick)")
	return cmd
}

type pngOptions struct {
	out        string
	size       int
	ticks      int
	background string
}

// renderPNG advances the widget by ticks and encodes the resulting frame.
func renderPNG(w io.Writer, prefs config.SpinnerState, opts pngOptions) error {
	img := raster.NewImage(opts.size)
	img.SetColor(spinner.Color(prefs.Color))
	img.SetDotSize(prefs.DotSize)
	img.SetBackground(opts.background)

	timer := &spinner.ManualTimer{}
	widget := spinner.New(img, timer, nil, prefs.Options()...)
	defer widget.Close()

	widget.Resize(float64(opts.size), float64(opts.size))
	widget.OnBecomeVisible()
	timer.Fire(opts.ticks)
	return img.Encode(w)
}

func newPNGCmd(flags *spinnerFlags) *cobra.Command {
	opts := pngOptions{}
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Render a single spinner frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := flags.resolve()
			if err != nil {
				return err
			}
			if opts.out == "" || opts.out == "-" {
				return renderPNG(cmd.OutOrStdout(), prefs, opts)
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", opts.out, err)
			}
			if err := renderPNG(f, prefs, opts); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "spinner.png", "output file, or - for stdout")
	cmd.Flags().IntVar(&opts.size, "size", 64, "image edge length in pixels")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 0, "ticks to advance before rendering")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color as #rrggbb (default transparent)")
	return cmd
}
