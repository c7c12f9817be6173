package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/pkg/grid"
)

// keyCommand creates the key command for working with cell keys.
func (c *CLI) keyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Encode and decode data-cell keys",
		Long: `Encode and decode data-cell keys.

A cell key identifies one data cell by its row and column leaf paths:
path segments joined with "/", the two paths joined with "::". Cell values
live outside the layout engine, keyed by these strings.`,
	}

	cmd.AddCommand(c.keyEncodeCommand())
	cmd.AddCommand(c.keyParseCommand())

	return cmd
}

// keyEncodeCommand creates the "key encode" subcommand.
func (c *CLI) keyEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <row-path> <col-path>",
		Short: "Build a cell key from two leaf paths (segments separated by /)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rowPath := strings.Split(args[0], "/")
			colPath := strings.Split(args[1], "/")
			fmt.Println(grid.CellKey(rowPath, colPath))
			return nil
		},
	}
}

// keyParseCommand creates the "key parse" subcommand.
func (c *CLI) keyParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <cell-key>",
		Short: "Split a cell key into its row and column paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, ok := grid.ParseCellKey(args[0])
			if !ok {
				return fmt.Errorf("malformed cell key %q", args[0])
			}
			printKeyValue("row path", strings.Join(ref.RowPath, " / "))
			printKeyValue("col path", strings.Join(ref.ColPath, " / "))
			return nil
		},
	}
}
