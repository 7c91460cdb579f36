package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-tui-controls/pkg/debug"
	"github.com/grindlemire/go-tui-controls/pkg/input"
	"github.com/grindlemire/go-tui-controls/pkg/render"
)

type options struct {
	config string
	script string
	debug  string
	ansi   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "controls",
		Short: "Render and drive a screen of dropdown controls",
		Long: `controls builds a screen of dropdown and log widgets from a YAML, TOML or
JSON file. Dropdown hooks are expressions; log(...) appends to the log panel.

Commands:
  render   print one frame
  replay   apply a script of input events, then print the frame and the log
  run      interactive mode (Ctrl+C quits)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug == "" {
				return nil
			}
			return debug.Init(opts.debug)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "screen configuration file")
	root.PersistentFlags().StringVar(&opts.debug, "debug", "", "write diagnostics to this file")
	_ = root.MarkPersistentFlagRequired("config")

	root.AddCommand(newRenderCmd(opts), newReplayCmd(opts), newRunCmd(opts))
	return root
}

func newRenderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScreen(opts.config)
			if err != nil {
				return err
			}
			return writeFrame(cmd.OutOrStdout(), s, opts.ansi)
		},
	}
	cmd.Flags().BoolVar(&opts.ansi, "ansi", false, "emit ANSI styling")
	return cmd
}

func newReplayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply scripted input and print the resulting frame and log",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScreen(opts.config)
			if err != nil {
				return err
			}
			f, err := os.Open(opts.script)
			if err != nil {
				return err
			}
			defer f.Close()

			events, err := ParseScript(f)
			if err != nil {
				return fmt.Errorf("%s: %w", opts.script, err)
			}
			return replay(cmd.OutOrStdout(), s, events, opts.ansi)
		},
	}
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "event script")
	cmd.Flags().BoolVar(&opts.ansi, "ansi", false, "emit ANSI styling")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the screen interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScreen(opts.config)
			if err != nil {
				return err
			}
			return run(os.Stdin, cmd.OutOrStdout(), s)
		},
	}
}

// replay dispatches events in order and prints the frame followed by the log.
func replay(w io.Writer, s *Screen, events []input.Event, ansi bool) error {
	for _, ev := range events {
		s.Dispatch(ev)
	}
	if err := writeFrame(w, s, ansi); err != nil {
		return err
	}
	fmt.Fprintln(w, "--- log ---")
	for _, line := range s.Log() {
		fmt.Fprintln(w, line)
	}
	return nil
}

func writeFrame(w io.Writer, s *Screen, ansi bool) error {
	buf := s.Render()
	if ansi {
		return render.WriteANSI(w, buf)
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// run puts the terminal in raw mode with mouse reporting and redraws after
// every batch of input until Ctrl+C.
func run(in *os.File, out io.Writer, s *Screen) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("run: stdin is not a terminal")
	}
	if w, h, err := term.GetSize(fd); err == nil {
		s.SetSize(min(s.Width(), w), min(s.Height(), h))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	fmt.Fprint(out, render.EnterAlt+render.HideCursor+render.EnableMouse+render.ClearScreen)
	defer fmt.Fprint(out, render.DisableMouse+render.ShowCursor+render.ExitAlt)

	buf := make([]byte, 256)
	for {
		fmt.Fprint(out, render.CursorHome)
		if err := render.WriteANSI(out, s.Render()); err != nil {
			return err
		}

		n, err := in.Read(buf)
		if err != nil {
			return err
		}
		for _, ev := range input.Parse(buf[:n]) {
			if ke, ok := ev.(input.KeyEvent); ok && ke.Is(input.KeyCtrlC) {
				return nil
			}
			s.Dispatch(ev)
		}
	}
}
