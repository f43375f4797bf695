package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/keylog/internal/app"
	"github.com/five82/keylog/internal/ui"
)

var version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "keylog: %v\n", err)
		return 1
	}
	return 0
}

// runFunc starts the application; tests substitute it.
type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(start runFunc) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "keylog",
		Short: "Record keys typed into a terminal editor",
		Long: `keylog opens a terminal text editor and appends every key typed into it,
with a UTC timestamp and the trailing editor content, to a plaintext log.

It logs ONLY keys typed into its own window.

Examples:
  keylog                              # Log to ./keystrokes.log
  keylog --log-file ~/notes/keys.log  # Log somewhere else
  keylog --debug-log /tmp/keylog.dbg --log-level debug`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return start(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/keylog/config.toml)")
	flags.StringVar(&opts.LogPath, "log-file", "", "keystroke log path (default keystrokes.log)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme for this run")
	flags.StringVar(&opts.DebugLog, "debug-log", "", "write diagnostics to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "diagnostics level: debug, info, warn, error")
	flags.StringVar(&opts.LogFormat, "log-format", "text", "diagnostics format: text or json")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/keylog/prefs.toml)")

	root.AddCommand(newThemesCmd())
	return root
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ui.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
