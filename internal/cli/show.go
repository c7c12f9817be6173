package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/pkg/grid"
)

// showCommand creates the show command for printing a layout as a text grid.
func (c *CLI) showCommand() *cobra.Command {
	var keys bool

	cmd := &cobra.Command{
		Use:   "show [layout.json]",
		Short: "Print a computed layout as a bordered text grid",
		Long: `Print a computed layout as a bordered text grid.

Each grid track becomes one table cell. Headers show their label in the
track where their span starts; spanned continuation tracks show an arrow.
Data cells show their leaf coordinates, or their full cell key with --keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := grid.ReadLayoutFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}

			fmt.Println(renderLayoutTable(layout, keys))
			printNewline()
			printDetail("%d×%d tracks · %d headers · %d data cells",
				len(layout.Template.Rows), len(layout.Template.Columns),
				len(layout.RowHeaders)+len(layout.ColHeaders), len(layout.DataCells))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keys, "keys", false, "show full cell keys in data cells")

	return cmd
}

// renderLayoutTable builds the bordered track grid for a layout.
func renderLayoutTable(l *grid.Layout, keys bool) string {
	nRows := len(l.Template.Rows)
	nCols := len(l.Template.Columns)

	cells := make([][]string, nRows)
	kind := make([][]cellKind, nRows)
	for r := range cells {
		cells[r] = make([]string, nCols)
		kind[r] = make([]cellKind, nCols)
	}

	for _, corner := range l.CornerCells {
		fillSpan(cells, kind, corner.Placement, corner.Label, kindCorner)
	}
	for _, h := range l.RowHeaders {
		fillSpan(cells, kind, h.Placement, h.Label, kindHeader)
	}
	for _, h := range l.ColHeaders {
		fillSpan(cells, kind, h.Placement, h.Label, kindHeader)
	}
	for _, d := range l.DataCells {
		label := fmt.Sprintf("r%d·c%d", d.RowLeaf, d.ColLeaf)
		if keys {
			label = d.Key()
		}
		fillSpan(cells, kind, d.Placement, label, kindData)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(colorDim)
	dataStyle := lipgloss.NewStyle().Foreground(colorWhite)
	headerCellStyle := lipgloss.NewStyle().Foreground(colorCyan)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= nRows || col >= nCols {
				return dimStyle
			}
			switch kind[row][col] {
			case kindHeader:
				return headerCellStyle
			case kindData:
				return dataStyle
			default:
				return dimStyle
			}
		})

	return t.Render()
}

type cellKind int

const (
	kindEmpty cellKind = iota
	kindCorner
	kindHeader
	kindData
)

// fillSpan writes a label into the placement's start track and marks the
// spanned continuation tracks.
func fillSpan(cells [][]string, kind [][]cellKind, p grid.Placement, label string, k cellKind) {
	for r := p.RowStart - 1; r < p.RowEnd-1 && r < len(cells); r++ {
		for c := p.ColStart - 1; c < p.ColEnd-1 && c < len(cells[r]); c++ {
			if r == p.RowStart-1 && c == p.ColStart-1 {
				cells[r][c] = label
			} else {
				cells[r][c] = iconArrow
			}
			kind[r][c] = k
		}
	}
}
