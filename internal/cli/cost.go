package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/path"
)

// costCommand creates the cost command: enumerate the cumulative costs
// of every contiguous sub-walk of the given walk.
func (c *CLI) costCommand() *cobra.Command {
	var walkSpec string

	cmd := &cobra.Command{
		Use:   "cost <graph>",
		Short: "Enumerate sub-path costs of a walk",
		Long: `Cost loads a graph, checks the walk against it, and prints one line per
contiguous sub-walk: first node, last node, and the summed arc costs
between them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			walk, err := parseWalk(walkSpec)
			if err != nil {
				return err
			}

			form, err := loadForm(args[0])
			if err != nil {
				return err
			}
			g, err := form.Sparse()
			if err != nil {
				return err
			}

			for _, node := range walk {
				if node < 0 || node >= g.NodeCount() {
					return errors.New(errors.ErrCodeInvalidWalk,
						"walk node %d out of range [0, %d)", node, g.NodeCount())
				}
			}
			for i := 0; i+1 < len(walk); i++ {
				if !g.HasArc(walk[i], walk[i+1]) {
					return errors.New(errors.ErrCodeInvalidWalk,
						"no arc %d->%d in walk", walk[i], walk[i+1])
				}
			}

			count := 0
			it := path.New[float64](g, walk)
			for {
				step, ok := it.Next()
				if !ok {
					break
				}
				fmt.Printf("%s %s %s  %s\n",
					StyleNumber.Render(fmt.Sprintf("%3d", step.Src)),
					StyleDim.Render(iconArrow),
					StyleNumber.Render(fmt.Sprintf("%-3d", step.Dst)),
					StyleValue.Render(fmt.Sprintf("%g", step.Cost)))
				count++
			}
			printDetail("%d sub-walks", count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&walkSpec, "walk", "w", "", "comma-separated node indices (required)")
	_ = cmd.MarkFlagRequired("walk")

	return cmd
}
