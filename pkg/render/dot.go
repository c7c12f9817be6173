// Package render turns axis hierarchies into Graphviz visualizations.
//
// The row and column trees of a grid are rendered as a node-link diagram:
// one cluster per axis, with edges from each category to its children. Leaf
// categories (the ones that become data tracks) are drawn with a filled
// background so the track-producing frontier is visible at a glance.
//
//	dot := render.ToDOT(axes, render.Options{})
//	svg, err := render.RenderSVG(dot)
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mshaler/isogrid/pkg/axis"
)

// Options configures axis diagram rendering.
type Options struct {
	// Detailed includes depth and leaf-span information in node labels.
	// When false, only the category label is shown.
	Detailed bool
}

// ToDOT converts both axis hierarchies to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(a axis.Axes, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph axes {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	writeCluster(&buf, "rows", a.Rows.Facet, a.Rows.Forest(), opts)
	writeCluster(&buf, "cols", a.Cols.Facet, a.Cols.Forest(), opts)

	buf.WriteString("}\n")
	return buf.String()
}

// ForestToDOT converts a single axis hierarchy to DOT, without clustering.
func ForestToDOT(f axis.Forest, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph axis {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	writeForest(&buf, "", f, opts)
	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, prefix, facet string, f axis.Forest, opts Options) {
	fmt.Fprintf(buf, "\n  subgraph cluster_%s {\n", prefix)
	fmt.Fprintf(buf, "    label=%q;\n", facet)
	buf.WriteString("    style=dashed;\n")
	writeForest(buf, prefix+":", f, opts)
	buf.WriteString("  }\n")
}

func writeForest(buf *bytes.Buffer, prefix string, f axis.Forest, opts Options) {
	m := axis.ComputeMetrics(f)
	for _, fn := range m.FlatNodes {
		label := fmtLabel(fn, opts.Detailed)
		attrs := fmtAttrs(fn, label)
		fmt.Fprintf(buf, "    %q [%s];\n", prefix+fn.Node.ID, strings.Join(attrs, ", "))
	}
	for _, fn := range m.FlatNodes {
		for _, child := range fn.Node.Children {
			fmt.Fprintf(buf, "    %q -> %q;\n", prefix+fn.Node.ID, prefix+child.ID)
		}
	}
}

func fmtLabel(fn axis.FlatNode, detailed bool) string {
	label := fn.Node.Label
	if label == "" {
		label = fn.Node.ID
	}
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("depth: %d", fn.Depth),
		fmt.Sprintf("leaves: [%d, %d)", fn.LeafStart, fn.LeafStart+fn.LeafCount),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(fn axis.FlatNode, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fn.IsLeaf {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root tag so the viewBox starts at the
// origin. Graphviz emits translated viewBoxes that confuse some viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
