package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/FilippoRanza/simplegraph/pkg/cache"
	"github.com/FilippoRanza/simplegraph/pkg/dot"
	"github.com/FilippoRanza/simplegraph/pkg/errors"
)

// renderTTL bounds how long rendered artifacts stay in the cache.
const renderTTL = 7 * 24 * time.Hour

// renderCommand creates the render command: graph file in, DOT source
// or rasterized image out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Render a graph as DOT, SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(args[0])
			if err != nil {
				return err
			}
			g, err := form.Sparse()
			if err != nil {
				return err
			}
			source := dot.Source[float64](g)

			if format == "dot" {
				if err := writeOutput(output, []byte(source+"\n")); err != nil {
					return err
				}
				if output != "" && output != "-" {
					printSuccess("Wrote DOT source")
					printFile(output)
				}
				return nil
			}
			if format != "svg" && format != "png" {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown format %q: want dot, svg or png", format)
			}

			artifacts, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			spin := newSpinnerWithContext(cmd.Context(), "Laying out graph...")
			spin.Start()

			ctx := cmd.Context()
			key := cache.RenderKey(format, []byte(source))
			data, cached, err := artifacts.Get(ctx, key)
			if err != nil || !cached {
				switch format {
				case "svg":
					data, err = dot.RenderSVG(ctx, source)
				case "png":
					data, err = dot.RenderPNG(ctx, source)
				}
				if err != nil {
					spin.StopWithError("Rendering failed")
					return err
				}
				if err := artifacts.Set(ctx, key, data, renderTTL); err != nil {
					loggerFromContext(ctx).Warn("cache set failed", "err", err)
				}
			}
			spin.Stop()

			if err := writeOutput(output, data); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printSuccess("Rendered %s", format)
				printFile(output)
				printStats(g.NodeCount(), g.ArcCount())
				printCached(cached)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format (dot, svg or png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}
