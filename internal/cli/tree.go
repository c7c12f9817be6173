package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/render"
)

// treeCommand creates the tree command for inspecting axis hierarchies.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "tree [axes.json]",
		Short: "Inspect axis hierarchies and their layout metrics",
		Long: `Inspect axis hierarchies and their layout metrics.

Prints both category trees with the metrics the layout engine derives from
them: depth, leaf index, and leaf span. With --format dot or --format svg the
trees are exported as a Graphviz diagram instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axes, err := axis.ReadAxesFile(args[0])
			if err != nil {
				return fmt.Errorf("load axes %s: %w", args[0], err)
			}

			switch format {
			case "", "text":
				printAxisTree("rows", axes.Rows)
				printNewline()
				printAxisTree("cols", axes.Cols)
				return nil
			case "dot":
				dot := render.ToDOT(axes, render.Options{Detailed: detailed})
				return writeTreeOutput(args[0], output, ".dot", []byte(dot))
			case "svg":
				dot := render.ToDOT(axes, render.Options{Detailed: detailed})
				svg, err := render.RenderSVG(dot)
				if err != nil {
					return fmt.Errorf("render SVG: %w", err)
				}
				return writeTreeOutput(args[0], output, ".svg", svg)
			default:
				return fmt.Errorf("unknown format %q (want text, dot, or svg)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for dot/svg (default: <input>.<format>)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include depth and leaf spans in diagram labels")

	return cmd
}

// printAxisTree prints one axis hierarchy with its derived metrics.
func printAxisTree(name string, cfg axis.Config) {
	forest := cfg.Forest()
	m := axis.ComputeMetrics(forest)

	title := name
	if cfg.Facet != "" {
		title = fmt.Sprintf("%s (%s)", name, cfg.Facet)
	}
	fmt.Println(StyleTitle.Render(title))
	printDetail("depth %d · %d leaves", m.Depth, m.LeafCount)

	for _, root := range forest {
		printTreeNode(root, m, "")
	}
}

func printTreeNode(n *axis.Node, m axis.Metrics, indent string) {
	label := n.Label
	if label == "" {
		label = n.ID
	}

	line := indent + label
	if fn, ok := m.FindByID(n.ID); ok {
		span := fmt.Sprintf("leaves [%d, %d)", fn.LeafStart, fn.LeafStart+fn.LeafCount)
		if fn.IsLeaf {
			span = fmt.Sprintf("leaf %d", fn.LeafStart)
		}
		line += "  " + StyleDim.Render(span)
	}
	fmt.Println(line)

	for _, child := range n.Children {
		printTreeNode(child, m, indent+"  ")
	}
}

func writeTreeOutput(input, output, ext string, data []byte) error {
	path := output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	printSuccess("Exported axis trees")
	printFile(path)
	return nil
}
