package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bfkr/alerts/pkg/termview"
)

func termCmd(load loader) *cobra.Command {
	var (
		s     scenario
		width int
	)

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Draw a toast or dialog in the terminal",
		Long: `Draw a single toast or dialog in the terminal using its colors.

Examples:
  bfkr term -m "Upload failed" -t error
  bfkr term -k prompt -m "Your name?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tree, err := s.build(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), termview.Render(tree, termview.Options{Width: width}))
			return nil
		},
	}

	s.register(cmd)
	cmd.Flags().IntVarP(&width, "width", "w", 40, "Toast width in cells")

	return cmd
}
