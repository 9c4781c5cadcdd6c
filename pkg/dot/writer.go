package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/japinli/pg-node2graph/pkg/nodetree"
)

// emptyMarker is how the dump prints a NULL pointer. Rows whose label
// contains it are dropped when Options.SkipEmpty is set.
const emptyMarker = "--"

// Options configures DOT emission. The zero value produces an uncolored
// script with all field rows included.
type Options struct {
	// Color enables edge coloring and per-record block colors from Colors.
	Color bool

	// SkipEmpty omits rows whose label denotes an empty value.
	SkipEmpty bool

	// Colors maps record labels to block colors. Consulted only when
	// Color is set.
	Colors ColorMap
}

// Script renders the tree rooted at root as a complete DOT document.
//
// Node blocks come first, in breadth-first discovery order; a child with
// children of its own is enqueued for its own visit and still listed as a
// row of its parent. A second breadth-first pass appends every edge
// accumulated during parsing, so the output is deterministic for a given
// tree and options.
func Script(root *nodetree.Node, opts Options) string {
	var buf bytes.Buffer

	buf.WriteString("digraph PGNodeGraph {\n")
	buf.WriteString("node [shape=none];\n")
	buf.WriteString("rankdir=LR;\n")
	buf.WriteString("size=\"100000,100000\";\n")

	queue := []*nodetree.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		var block strings.Builder
		block.WriteString(nodeHeader(n.Seq, n.Label, opts))
		for _, c := range n.Children {
			// Children that expand further get their own visit; a record
			// without fields still needs a (header-only) block of its own.
			if len(c.Children) > 0 || c.Kind == nodetree.KindRecord {
				queue = append(queue, c)
			}
			if opts.SkipEmpty && strings.Contains(c.Label, emptyMarker) {
				continue
			}
			block.WriteString(nodeRow(c.Index, c.Label))
		}
		block.WriteString(nodeFooter)

		// Lists and folded fields contribute rows and edges to their
		// owner but no block of their own.
		if n.Kind == nodetree.KindRecord {
			buf.WriteString(block.String())
			buf.WriteByte('\n')
		}
	}

	queue = []*nodetree.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		queue = append(queue, n.Children...)
		for _, e := range n.Edges {
			buf.WriteString(edgeStatement(e, opts.Color))
			buf.WriteByte('\n')
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeHeader renders the opening of a record block: the table element and
// the bold header row anchored at port f0. The border color always tracks
// the background color.
func nodeHeader(seq int, name string, opts Options) string {
	var brcolor, bgcolor, ftcolor string
	if opts.Color {
		if c, ok := opts.Colors[name]; ok {
			if c.Background != "" {
				bgcolor = fmt.Sprintf(" bgcolor=%q", c.Background)
				brcolor = fmt.Sprintf(" color=%q", c.Background)
			}
			if c.Font != "" {
				ftcolor = fmt.Sprintf(" color=%q", c.Font)
			}
		}
	}

	return fmt.Sprintf("node_%d [\n"+
		"  label=<<table border=\"0\" cellspacing=\"0\"%s>\n"+
		"    <tr>\n"+
		"      <td port=\"f0\" border=\"1\"%s>\n"+
		"       <B><font%s>%s</font></B>\n"+
		"      </td>\n"+
		"    </tr>\n",
		seq, brcolor, bgcolor, ftcolor, name)
}

// nodeRow renders one field row anchored at its slot port.
func nodeRow(port int, label string) string {
	if strings.Contains(label, "colnames") {
		label = formatColnames(label)
	}
	return fmt.Sprintf("    <tr><td port=\"f%d\" border=\"1\">%s</td></tr>\n", port, label)
}

const nodeFooter = "  </table>>\n];"

// edgeStatement renders one edge between two seq:port anchors. With color
// enabled, list-chain edges are blue and parent-child edges green.
func edgeStatement(e nodetree.Edge, color bool) string {
	var style string
	if color {
		if e.List {
			style = " [color=blue]"
		} else {
			style = " [color=green]"
		}
	}
	return fmt.Sprintf("node_%d:f%d -> node_%d:f%d%s;", e.FromSeq, e.FromPort, e.ToSeq, e.ToPort, style)
}

// formatColnames expands a column-name list field into a nested two-column
// table, one row per space-separated name. The empty-list form renders
// verbatim as a single row.
func formatColnames(name string) string {
	if name == "colnames --" {
		return name
	}

	head, rest := "", name
	if pos := strings.Index(name, "("); pos >= 0 {
		head, rest = name[:pos+1], name[pos+1:]
	}

	var b strings.Builder
	b.WriteString("    \n<table border=\"0\" cellspacing=\"0\"> \n")
	b.WriteString("      <tr>\n")
	b.WriteString("        <td>" + head + "</td>\n")
	b.WriteString("        <td></td>\n")
	b.WriteString("      </tr>\n")

	rest = strings.TrimLeft(rest, " \t\n\v\f\r")
	for strings.Contains(rest, " ") {
		pos := strings.Index(rest, " ")
		tok := strings.TrimRight(rest[:pos], " \t\n\v\f\r")
		b.WriteString("      <tr>\n")
		b.WriteString("        <td></td>\n")
		b.WriteString("        <td align=\"left\">" + tok + "</td>\n")
		b.WriteString("      </tr>\n")
		rest = strings.TrimLeft(rest[pos+1:], " \t\n\v\f\r")
	}
	if rest != "" {
		b.WriteString("      <tr>\n")
		b.WriteString("        <td>" + rest + "</td>\n")
		b.WriteString("        <td></td>\n")
		b.WriteString("      </tr>\n")
	}

	b.WriteString("    </table>\n")
	return b.String()
}
