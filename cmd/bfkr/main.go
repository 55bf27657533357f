package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bfkr/alerts"
	"github.com/bfkr/alerts/internal/config"
	"github.com/bfkr/alerts/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┳┓┏┓┓┏┓┳┓
  ┣┫┣ ┃┫ ┣┫
  ┻┛┻ ┛┗┛┛┗
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var coded *errors.Error
		if stderrors.As(err, &coded) {
			fmt.Fprint(os.Stderr, coded.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:   "bfkr",
		Short: "Toast notifications and modal dialogs",
		Long: `bfkr draws toast notifications and alert, confirm and prompt
dialogs into an element tree.

The CLI can:

  • Serve a live browser preview driven by an HTTP API
  • Render a toast or dialog to HTML
  • Draw a toast or dialog in the terminal
  • Print and initialize the color table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Directory containing bfkr.json or bfkr.toml")

	load := func() (*config.Config, error) {
		return config.LoadOrDefault(dir)
	}

	rootCmd.AddCommand(
		serveCmd(load),
		renderCmd(load),
		termCmd(load),
		colorsCmd(load),
		initCmd(&dir),
		versionCmd(),
	)
	return rootCmd
}

// loader loads the configuration selected by the --dir flag.
type loader func() (*config.Config, error)

// settings maps file configuration onto engine settings.
func settings(cfg *config.Config) alerts.Settings {
	return alerts.Settings{
		Colors:      cfg.Colors,
		Position:    cfg.Toast.Position,
		ToastTheme:  cfg.Toast.Theme,
		DialogTheme: cfg.Dialog.Theme,
	}
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
