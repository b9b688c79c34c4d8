package main

import (
	"fmt"
	"os"

	"ringspin/internal/debug"
	"ringspin/internal/version"
	"ringspin/pkg/config"
	"ringspin/pkg/cursor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// spinnerFlags holds the property overrides shared by every command.
type spinnerFlags struct {
	dotSize      float64
	ringDiameter float64
	color        string
	preset       string
}

func (f *spinnerFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().Float64Var(&f.dotSize, "dot-size", 0, "dot diameter in sub-pixels")
	cmd.PersistentFlags().Float64Var(&f.ringDiameter, "ring-diameter", 0, "distance of the dots from the centre (default: width/3)")
	cmd.PersistentFlags().StringVar(&f.color, "color", "", "dot color as #rrggbb")
	cmd.PersistentFlags().StringVar(&f.preset, "preset", "", "YAML preset file with dot_size, ring_diameter and color")
}

// resolve layers saved preferences, the preset file and flags, in that order.
func (f *spinnerFlags) resolve() (config.SpinnerState, error) {
	prefs, err := config.GetSpinnerState()
	if err != nil {
		debug.DebugLog("Failed to load saved preferences: %v", err)
		prefs = config.DefaultSpinnerState()
	}
	if f.preset != "" {
		preset, err := config.LoadPreset(f.preset)
		if err != nil {
			return prefs, err
		}
		prefs = prefs.Merge(preset)
	}
	prefs = prefs.Merge(config.SpinnerState{
		DotSize:      f.dotSize,
		RingDiameter: f.ringDiameter,
		Color:        f.color,
	})
	if err := prefs.Validate(); err != nil {
		return prefs, err
	}
	return prefs, nil
}

func isInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// terminalSize returns the size of the terminal on fd, or the fallback.
func terminalSize(fd uintptr, fallbackCols, fallbackRows int) (int, int) {
	cols, rows, err := term.GetSize(int(fd))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

func runDemo(prefs config.SpinnerState) error {
	debugLogger := debug.InitDebugLogger()
	defer debugLogger.Close()
	debug.DebugLog("Starting demo with %+v", prefs)

	m := newModel(prefs, cursor.NewTerminal(os.Stderr))
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	// The program may end without the quit key, e.g. on a signal.
	if fm, ok := final.(model); ok {
		fm.spinner.Close()
	} else {
		m.spinner.Close()
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var showVersion bool
	flags := &spinnerFlags{}

	rootCmd := &cobra.Command{
		Use:   "ringspin",
		Short: "A nine-dot circular loading spinner for the terminal",
		Long: `ringspin draws a ring of nine fading dots and spins it while it is visible.

Run without arguments for the interactive demo. Properties can be set with
flags, a YAML preset, or saved from inside the demo with 's'.

Examples:
  ringspin                          # Interactive demo
  ringspin --color '#8be9fd'        # Cyan dots
  ringspin frames --count 10        # Print one full revolution
  ringspin png --out spinner.png    # Render a frame to PNG`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			prefs, err := flags.resolve()
			if err != nil {
				return err
			}
			if !isInteractive(os.Stdin.Fd()) || !isInteractive(os.Stdout.Fd()) {
				cols, rows := terminalSize(os.Stdout.Fd(), defaultFrameCols, defaultFrameRows)
				return renderFrames(cmd.OutOrStdout(), prefs, frameOptions{cols: cols, rows: rows, count: spinnerRevolution})
			}
			return runDemo(prefs)
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	flags.register(rootCmd)

	rootCmd.AddCommand(newFramesCmd(flags), newPNGCmd(flags), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
