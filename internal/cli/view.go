package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/pkg/grid"
)

// viewCommand creates the view command for interactively inspecting a layout.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [layout.json]",
		Short: "Interactively inspect a layout's data cells",
		Long: `Interactively inspect a layout's data cells.

Opens a terminal UI with a cursor over the data-cell matrix. The panel below
shows the selected cell's placement, leaf paths, and cell key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := grid.ReadLayoutFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}
			if len(layout.DataCells) == 0 {
				printInfo("Layout has no data cells")
				return nil
			}

			model := NewLayoutModel(layout)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// =============================================================================
// LayoutModel - Interactive data-cell inspection
// =============================================================================

// LayoutModel is the bubbletea model for layout inspection. The cursor moves
// over the row-leaf × col-leaf matrix; cells are addressed by leaf indexes.
type LayoutModel struct {
	Layout *grid.Layout
	Row    int // cursor row-leaf index
	Col    int // cursor col-leaf index
	Height int
	Offset int // first visible row-leaf

	rowLabels []string
	colLabels []string
}

// NewLayoutModel creates a layout inspection model.
func NewLayoutModel(l *grid.Layout) LayoutModel {
	m := LayoutModel{Layout: l, Height: 15}

	// Leaf headers span exactly one data track, so the leaf index falls out
	// of the placement start.
	m.rowLabels = make([]string, l.RowLeafCount)
	for _, h := range l.RowHeaders {
		if h.IsLeaf {
			setLeafLabel(m.rowLabels, h.Placement.RowStart-l.ColHeaderDepth-1, h)
		}
	}
	m.colLabels = make([]string, l.ColLeafCount)
	for _, h := range l.ColHeaders {
		if h.IsLeaf {
			setLeafLabel(m.colLabels, h.Placement.ColStart-l.RowHeaderDepth-1, h)
		}
	}
	return m
}

func setLeafLabel(labels []string, leaf int, h grid.HeaderCell) {
	if leaf < 0 || leaf >= len(labels) {
		return
	}
	if h.Label != "" {
		labels[leaf] = h.Label
	} else {
		labels[leaf] = h.ID
	}
}

func (m LayoutModel) Init() tea.Cmd {
	return nil
}

func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Row > 0 {
				m.Row--
				if m.Row < m.Offset {
					m.Offset = m.Row
				}
			}
		case "down", "j":
			if m.Row < m.Layout.RowLeafCount-1 {
				m.Row++
				if m.Row >= m.Offset+m.Height {
					m.Offset = m.Row - m.Height + 1
				}
			}
		case "left", "h":
			if m.Col > 0 {
				m.Col--
			}
		case "right", "l":
			if m.Col < m.Layout.ColLeafCount-1 {
				m.Col++
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 14
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LayoutModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Inspector"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderMatrix())
	b.WriteString("\n\n")
	b.WriteString(m.renderCellPanel())

	return b.String()
}

// renderMatrix renders the visible slice of the data-cell matrix.
func (m LayoutModel) renderMatrix() string {
	end := m.Offset + m.Height
	if end > m.Layout.RowLeafCount {
		end = m.Layout.RowLeafCount
	}

	headers := make([]string, m.Layout.ColLeafCount+1)
	headers[0] = ""
	for c := 0; c < m.Layout.ColLeafCount; c++ {
		headers[c+1] = m.colLabels[c]
	}

	rows := [][]string{}
	for r := m.Offset; r < end; r++ {
		row := make([]string, m.Layout.ColLeafCount+1)
		row[0] = m.rowLabels[r]
		for c := 0; c < m.Layout.ColLeafCount; c++ {
			mark := "·"
			if r == m.Row && c == m.Col {
				mark = "▣"
			}
			row[c+1] = mark
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			if m.Offset+row == m.Row && col-1 == m.Col {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return StyleDim
		})

	return t.Render()
}

// renderCellPanel renders the details of the cell under the cursor.
func (m LayoutModel) renderCellPanel() string {
	cell := m.selectedCell()
	if cell == nil {
		return StyleDim.Render("  no cell selected")
	}

	var b strings.Builder
	kv := func(key, value string) {
		keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(11)
		b.WriteString("  " + keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
	}

	kv("key", cell.Key())
	kv("row path", strings.Join(cell.RowPath, " / "))
	kv("col path", strings.Join(cell.ColPath, " / "))
	kv("rows", fmt.Sprintf("[%d, %d)", cell.Placement.RowStart, cell.Placement.RowEnd))
	kv("cols", fmt.Sprintf("[%d, %d)", cell.Placement.ColStart, cell.Placement.ColEnd))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Row*m.Layout.ColLeafCount+m.Col+1, len(m.Layout.DataCells))))

	return b.String()
}

// selectedCell finds the data cell under the cursor. Cells are emitted in
// row-leaf-outer order, so the index is row*colLeafCount + col.
func (m LayoutModel) selectedCell() *grid.DataCell {
	idx := m.Row*m.Layout.ColLeafCount + m.Col
	if idx < 0 || idx >= len(m.Layout.DataCells) {
		return nil
	}
	return &m.Layout.DataCells[idx]
}
