package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// inspectCommand creates the inspect command: an interactive node
// browser over a graph file.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <graph>",
		Short: "Browse a graph's nodes and arcs interactively",
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

			model := newInspectModel(args[0], g)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectModel is the bubbletea model for the node browser: a scrolling
// node list on top, the selected node's outgoing arcs below.
type inspectModel struct {
	title   string
	graph   *graph.Sparse[float64]
	weights []float64
	cursor  int
	offset  int
	height  int
}

func newInspectModel(title string, g *graph.Sparse[float64]) inspectModel {
	weights := make([]float64, g.NodeCount())
	g.VisitNodes(func(i int, w float64) { weights[i] = w })
	return inspectModel{
		title:   title,
		graph:   g,
		weights: weights,
		height:  15,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.graph.NodeCount()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g":
			m.cursor, m.offset = 0, 0
		case "G":
			m.cursor = m.graph.NodeCount() - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s, %d nodes, %d arcs",
		m.graph.Type(), m.graph.NodeCount(), m.graph.ArcCount())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if m.graph.NodeCount() == 0 {
		b.WriteString(listDimStyle.Render("  (empty graph)"))
		return b.String()
	}

	end := m.offset + m.height
	if end > m.graph.NodeCount() {
		end = m.graph.NodeCount()
	}
	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%sn%-4d weight %-10g degree %d",
			cursor, i, m.weights[i], len(m.graph.Successors(i)))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	arcs := m.graph.Successors(m.cursor)
	if len(arcs) == 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  n%d has no outgoing arcs", m.cursor)))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  arcs from n%d:", m.cursor)))
		b.WriteString("\n")
		for _, arc := range arcs {
			b.WriteString(fmt.Sprintf("    %s n%-4d %s\n",
				listDimStyle.Render(iconArrow),
				arc.Dst,
				StyleNumber.Render(fmt.Sprintf("%g", arc.Weight))))
		}
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, m.graph.NodeCount())))
	return b.String()
}
