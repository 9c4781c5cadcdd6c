package dot

import (
	"strings"
	"testing"

	"github.com/japinli/pg-node2graph/pkg/nodetree"
)

func parseTree(t *testing.T, input string) *nodetree.Node {
	t.Helper()
	root, err := nodetree.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return root
}

// blockCount counts emitted node blocks by their opening marker.
func blockCount(script string) int {
	return strings.Count(script, " [\n  label=<<table")
}

func TestScriptHeaderAndFooter(t *testing.T) {
	script := Script(parseTree(t, "{A }"), Options{})

	for _, want := range []string{
		"digraph PGNodeGraph {\n",
		"node [shape=none];\n",
		"rankdir=LR;\n",
		"size=\"100000,100000\";\n",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
	if !strings.HasSuffix(script, "}\n") {
		t.Errorf("script does not end with closing brace: %q", script[len(script)-10:])
	}
}

func TestScriptFoldedRecord(t *testing.T) {
	script := Script(parseTree(t, "{A :f1 1 :f2 { B :g1 2 } }"), Options{})

	if got := blockCount(script); got != 2 {
		t.Errorf("visible blocks = %d, want 2 (A and B)", got)
	}
	if !strings.Contains(script, "node_0 [") {
		t.Error("no block for A (node_0)")
	}
	if !strings.Contains(script, "node_3 [") {
		t.Error("no block for B (node_3)")
	}
	if strings.Contains(script, "node_2 [") {
		t.Error("folded field f2 must not get a block of its own")
	}
	if !strings.Contains(script, `<td port="f1" border="1">f1 1</td>`) {
		t.Error("missing row for f1 inside A's block")
	}
	if !strings.Contains(script, "node_0:f2 -> node_3:f0;") {
		t.Error("missing edge from A's f2 row to B's header")
	}
}

func TestScriptListChain(t *testing.T) {
	script := Script(parseTree(t, "{A :lst ( {B} {C} ) }"), Options{})

	if got := blockCount(script); got != 3 {
		t.Errorf("visible blocks = %d, want 3 (A, B, C)", got)
	}
	if !strings.Contains(script, "node_0:f1 -> node_2:f0;") {
		t.Error("missing edge A -> B")
	}
	if !strings.Contains(script, "node_2:f0 -> node_3:f0;") {
		t.Error("missing chained edge B -> C")
	}
	if strings.Contains(script, "node_0:f1 -> node_3:f0;") {
		t.Error("list fanned out A -> C instead of chaining through B")
	}
}

func TestScriptEdgesAfterNodes(t *testing.T) {
	script := Script(parseTree(t, "{A :f { B :g ( {C} {D} ) } }"), Options{})

	lastBlock := strings.LastIndex(script, "label=<<table")
	firstEdge := strings.Index(script, "->")
	if firstEdge < 0 {
		t.Fatal("script has no edges")
	}
	if firstEdge < lastBlock {
		t.Error("edge statements are interleaved with node blocks")
	}
}

func TestScriptSkipEmpty(t *testing.T) {
	const input = "{A :f1 1 :qual -- :f3 3 }"

	withRows := Script(parseTree(t, input), Options{})
	if !strings.Contains(withRows, ">qual --</td>") {
		t.Error("empty row missing with skip-empty off")
	}

	skipped := Script(parseTree(t, input), Options{SkipEmpty: true})
	if strings.Contains(skipped, "qual") {
		t.Error("empty row still present with skip-empty on")
	}
	for _, keep := range []string{">f1 1</td>", ">f3 3</td>"} {
		if !strings.Contains(skipped, keep) {
			t.Errorf("unrelated row %q was dropped", keep)
		}
	}
}

func TestScriptColnames(t *testing.T) {
	script := Script(parseTree(t, "{A :colnames (a b) }"), Options{})

	if !strings.Contains(script, "<td>colnames (</td>") {
		t.Error("missing head row of expanded colnames table")
	}
	if !strings.Contains(script, `<td align="left">a</td>`) {
		t.Error("missing sub-row for first column name")
	}
	if !strings.Contains(script, "<td>b)</td>") {
		t.Error("missing trailing token row")
	}
}

func TestScriptColnamesEmptySentinel(t *testing.T) {
	script := Script(parseTree(t, "{A :colnames -- }"), Options{})

	if !strings.Contains(script, ">colnames --</td>") {
		t.Error("empty colnames should render verbatim as a single row")
	}
	if strings.Contains(script, `align="left"`) {
		t.Error("empty colnames must not expand into a sub-table")
	}
}

func TestScriptColors(t *testing.T) {
	root := parseTree(t, "{QUERY :rtable ( {RANGETBLENTRY} ) }")
	colors := ColorMap{
		"QUERY":         {Background: "skyblue"},
		"RANGETBLENTRY": {Background: "gray", Font: "white"},
	}

	plain := Script(root, Options{})
	if strings.Contains(plain, "bgcolor=") || strings.Contains(plain, "[color=") {
		t.Error("color attributes leaked into uncolored output")
	}

	colored := Script(root, Options{Color: true, Colors: colors})
	for _, want := range []string{
		`<table border="0" cellspacing="0" color="skyblue">`,
		`<td port="f0" border="1" bgcolor="skyblue">`,
		`<font color="white">RANGETBLENTRY</font>`,
		" [color=blue];",
	} {
		if !strings.Contains(colored, want) {
			t.Errorf("colored script missing %q", want)
		}
	}
}

func TestScriptEdgeStyles(t *testing.T) {
	script := Script(parseTree(t, "{A :f { B } :lst ( {C} ) }"), Options{Color: true})

	if !strings.Contains(script, "-> node_2:f0 [color=green];") {
		t.Error("parent-child edge should be green")
	}
	if !strings.Contains(script, "-> node_4:f0 [color=blue];") {
		t.Error("list-chain edge should be blue")
	}
}

func TestScriptDeterministic(t *testing.T) {
	const input = "{QUERY :f1 1 :sub { PLAN :tl ( {TARGETENTRY} {TARGETENTRY} ) } }"
	opts := Options{Color: true, Colors: DefaultColorMap(), SkipEmpty: true}

	first := Script(parseTree(t, input), opts)
	second := Script(parseTree(t, input), opts)
	if first != second {
		t.Error("identical tree and options produced different scripts")
	}
}
