package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bfkr/alerts/pkg/preview"
)

func serveCmd(load loader) *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Start a browser preview of toasts and dialogs.

Toasts and dialogs are triggered over HTTP and pushed to every
connected browser. Clicks in the browser settle dialogs on the server.

Examples:
  bfkr serve
  bfkr serve --port=8080
  curl -X POST localhost:3400/api/toast -d '{"message":"Saved","type":"success"}'
  curl -X POST localhost:3400/api/dialog -d '{"kind":"confirm","message":"Delete?"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := preview.New(preview.Config{
				Addr:          cfg.Address(),
				Title:         cfg.Preview.Title,
				Metrics:       cfg.Preview.Metrics,
				Settings:      settings(cfg),
				ToastDuration: cfg.ToastDuration(),
				Logger:        logger,
			})

			w := cmd.OutOrStdout()
			printBanner(w)
			fmt.Fprintln(w, "  preview")
			fmt.Fprintln(w)
			success(w, "Serving on %s", cfg.URL())
			if cfg.Preview.Metrics {
				info(w, "Metrics at %s/metrics", cfg.URL())
			}
			fmt.Fprintln(w)

			if err := server.Run(ctx); err != nil {
				errorMsg("Preview server stopped")
				return err
			}
			fmt.Fprintln(w, "\n  Shutting down...")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log engine debug output")

	return cmd
}
