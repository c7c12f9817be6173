package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/pkg/axis"
	"github.com/mshaler/isogrid/pkg/grid"
	"github.com/mshaler/isogrid/pkg/pipeline"
)

// layoutCommand creates the layout command for computing grid layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{Template: c.Config.Template.TemplateOptions()}
	opts.SetDefaults()

	cmd := &cobra.Command{
		Use:   "layout [axes.json]",
		Short: "Compute a grid layout from row and column category trees",
		Long: `Compute a grid layout from row and column category trees.

The layout command takes an axes.json file (rows and cols hierarchies) and
computes the complete grid layout: track templates, header and corner spans,
and the data-cell cross product with stable cell keys. The output is a
layout.json file that a grid front end can apply directly.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Layout flags
	cmd.Flags().IntVar(&opts.MaxDataCells, "max-cells", opts.MaxDataCells, "data cell limit (-1 to disable)")
	cmd.Flags().StringVar((*string)(&opts.Template.HeaderColWidth), "header-col-width", string(opts.Template.HeaderColWidth), "header column track size")
	cmd.Flags().StringVar((*string)(&opts.Template.DataColWidth), "data-col-width", string(opts.Template.DataColWidth), "data column track size")
	cmd.Flags().StringVar((*string)(&opts.Template.HeaderRowHeight), "header-row-height", string(opts.Template.HeaderRowHeight), "header row track size")
	cmd.Flags().StringVar((*string)(&opts.Template.DataRowHeight), "data-row-height", string(opts.Template.DataRowHeight), "data row track size")

	return cmd
}

// runLayout loads the axes, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	axes, err := axis.ReadAxesFile(input)
	if err != nil {
		return fmt.Errorf("load axes %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing grid layout...")
	spinner.Start()

	layout, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, axes, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := grid.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printLayoutStats(layout.RowLeafCount, layout.ColLeafCount, len(layout.DataCells), cacheHit)
	printNewline()
	printNextStep("Inspect", "isogrid show "+outputPath)

	return nil
}
