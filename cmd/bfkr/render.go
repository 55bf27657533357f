package main

import (
	"github.com/spf13/cobra"

	"github.com/bfkr/alerts/pkg/preview"
	"github.com/bfkr/alerts/pkg/render"
)

func renderCmd(load loader) *cobra.Command {
	var (
		s      scenario
		page   bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a toast or dialog to HTML",
		Long: `Render a single toast or dialog to HTML on stdout.

Examples:
  bfkr render -m "Saved" -t success
  bfkr render -k confirm -m "Delete file?" --theme glass --page > confirm.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			tree, err := s.build(cfg)
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{
				Pretty:   pretty,
				Indent:   "  ",
				OmitHIDs: true,
			})
			w := cmd.OutOrStdout()
			if page {
				return r.RenderPage(w, render.PageData{
					Body:   tree.Root(),
					Title:  cfg.Preview.Title,
					Styles: []string{preview.Stylesheet},
				})
			}
			return r.RenderChildren(w, tree.Root())
		},
	}

	s.register(cmd)
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the output in a full HTML page with the stylesheet")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
