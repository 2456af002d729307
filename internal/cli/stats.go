package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command: a quick textual summary of a
// graph file.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph>",
		Short: "Show summary statistics of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := loadForm(args[0])
			if err != nil {
				return err
			}

			nodeEncoding := "extended"
			if form.Nodes().Compact() {
				nodeEncoding = "compact"
			}
			arcEncoding := "simple"
			if form.Arcs().Weighted() {
				arcEncoding = "weighted"
			}

			g, err := form.Sparse()
			if err != nil {
				return err
			}
			var totalWeight float64
			g.VisitArcs(func(_, _ int, w float64) { totalWeight += w })

			printKeyValue("type", form.Type().String())
			printKeyValue("nodes", fmt.Sprintf("%d (%s)", form.NodeCount(), nodeEncoding))
			printKeyValue("arcs", fmt.Sprintf("%d (%s)", form.ArcCount(), arcEncoding))
			printKeyValue("total cost", fmt.Sprintf("%g", totalWeight))
			return nil
		},
	}
}
