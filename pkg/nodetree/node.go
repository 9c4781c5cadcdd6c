package nodetree

// Kind classifies a tree node.
type Kind int

const (
	// KindRecord is a node originating from a {...} structural unit.
	// Records are the only nodes rendered as separate graph blocks.
	KindRecord Kind = iota

	// KindField is a named value introduced by ':name value'. Fields are
	// rendered as rows inside their owning record's block.
	KindField

	// KindList is a field reclassified by a following (...) group. A list
	// chains its children edge-to-edge instead of fanning edges out from
	// the parent record.
	KindList

	// KindFolded is a field retroactively demoted to a pure edge anchor
	// because its value turned out to be a nested record rather than a
	// scalar.
	KindFolded
)

// String returns the kind name for debugging output.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindField:
		return "field"
	case KindList:
		return "list"
	case KindFolded:
		return "folded"
	default:
		return "unknown"
	}
}

// Edge is a precomputed edge between two node anchors. An anchor is a
// sequence number plus a field slot; slot 0 addresses the record header.
type Edge struct {
	FromSeq  int
	FromPort int
	ToSeq    int
	ToPort   int

	// List marks an edge produced inside a list context. List edges chain
	// sibling records and are styled differently from parent-child edges.
	List bool
}

// Node is a single node of the parsed tree.
//
// Nodes are mutated only while they sit on the parser's stack; after the
// final pop they are fixed. The tree is a strict single-owner hierarchy:
// every node except the root has exactly one parent.
type Node struct {
	Kind  Kind
	Label string

	// Seq is a globally monotonic number assigned at creation time in
	// input order. It is unique for a given input and serves as the
	// rendered graph-node identifier. Fields consume sequence numbers
	// too, so the numbers of visible records may have gaps.
	Seq int

	// Index is the 1-based position among the parent's children at the
	// time of attachment, 0 for the root. It doubles as the node's row
	// port inside the parent's rendered block.
	Index int

	// Children are owned child nodes in input order.
	Children []*Node

	// Edges are the edge descriptions accumulated while this node was
	// the active parsing context.
	Edges []Edge
}

// Count returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// EdgeCount returns the number of edges accumulated in the subtree
// rooted at n.
func (n *Node) EdgeCount() int {
	total := len(n.Edges)
	for _, c := range n.Children {
		total += c.EdgeCount()
	}
	return total
}
