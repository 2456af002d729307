package cli

import (
	"github.com/spf13/cobra"

	"github.com/FilippoRanza/simplegraph/pkg/canonical"
)

// convertCommand creates the convert command: load a graph, rebuild it
// in the chosen backend, and write the canonical JSON of what that
// backend stores.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		backend string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "convert <graph>",
		Short: "Convert a graph file between storage backends",
		Long: `Convert reads a TOML manifest or JSON canonical form, materializes it
in the chosen backend, and writes the resulting canonical form as JSON.

Converting through the dense backend de-duplicates repeated arcs;
converting through the sparse backend preserves them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			track := newProgress(logger)

			form, err := loadForm(args[0])
			if err != nil {
				return err
			}
			g, err := form.Build(backend)
			if err != nil {
				return err
			}
			converted := canonical.Capture[float64](g)

			w, closeOut, err := openOutput(output)
			if err != nil {
				return err
			}
			if err := converted.Encode(w); err != nil {
				_ = closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return err
			}

			track.done("converted " + args[0])
			if output != "" && output != "-" {
				printSuccess("Wrote %s backend form", backend)
				printFile(output)
				printStats(converted.NodeCount(), converted.ArcCount())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", canonical.BackendSparse, "storage backend (sparse or dense)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
