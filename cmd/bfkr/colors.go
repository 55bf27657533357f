package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bfkr/alerts/internal/config"
	"github.com/bfkr/alerts/internal/errors"
	"github.com/bfkr/alerts/pkg/theme"
)

func colorsCmd(load loader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print the color table",
		Long: `Print the semantic color table after applying configuration overrides.

Examples:
  bfkr colors
  bfkr colors --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			registry := theme.NewRegistry()
			registry.SetColors(cfg.Colors)
			colors := registry.Colors()

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(colors)
			}

			for _, typ := range theme.Types {
				swatch := lipgloss.NewStyle().Background(lipgloss.Color(colors[typ])).Render("    ")
				fmt.Fprintf(w, "  %s %-8s %s\n", swatch, typ, colors[typ])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func initCmd(dir *string) *cobra.Command {
	var (
		useTOML bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.ConfigFileName
			if useTOML {
				name = config.TOMLConfigFileName
			}
			path := filepath.Join(*dir, name)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Pass --force to overwrite it")
			}

			cfg := config.New()
			cfg.Colors = theme.DefaultColors()
			if err := cfg.SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useTOML, "toml", false, "Write bfkr.toml instead of bfkr.json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
