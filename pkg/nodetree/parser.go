package nodetree

import (
	"io"

	"github.com/japinli/pg-node2graph/pkg/errors"
)

// Parse reads exactly one bracket-delimited node tree from r and returns
// its root. Bytes preceding the first '{' that are not structural
// characters are skipped, as is any literal field payload; input after
// the root's closing '}' is left unconsumed.
//
// The parser is a stack machine over five structural events:
//
//	{  open a record and attach it to the current context
//	:  open a field row inside the current record
//	(  reclassify the preceding field as a list and push it
//	)  close the current list
//	}  close the current record
//
// A field whose value turns out to be a nested record is retroactively
// folded: it stops being a row value, adopts its record's sequence number
// as edge anchor, and receives the nested record as its child. Inside a
// list, records chain sibling-to-sibling instead of fanning out from the
// list's owner.
//
// Structural violations (a closer or ':' with no open record, '(' with no
// preceding field, end of input with open contexts) return an error with
// code [errors.ErrCodeMalformedTree] and no tree.
func Parse(r io.Reader) (*Node, error) {
	in := newReader(r)

	var (
		seq          int
		stack        []*Node
		prevWasField bool
	)

	for {
		ch, err := in.readByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read input")
		}

		switch ch {
		case '{':
			node := &Node{Kind: KindRecord, Label: scanName(in), Seq: seq}
			seq++

			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if prevWasField {
					// The pending field introduces this record. Demote it
					// to a pure anchor carrying its record's identity and
					// attach the new record beneath it.
					parent := top
					top = parent.Children[len(parent.Children)-1]
					top.Kind = KindFolded
					top.Seq = parent.Seq
					prevWasField = false
				}

				from, fromPort := top.Seq, top.Index
				if top.Kind == KindList && len(top.Children) > 0 {
					// Lists chain: the edge source is the previously
					// appended element, not the list's owner.
					prev := top.Children[len(top.Children)-1]
					from, fromPort = prev.Seq, 0
				}
				top.Edges = append(top.Edges, Edge{
					FromSeq:  from,
					FromPort: fromPort,
					ToSeq:    node.Seq,
					List:     top.Kind == KindList,
				})
				top.Children = append(top.Children, node)
				node.Index = len(top.Children)
			}

			stack = append(stack, node)
			prevWasField = false

		case '}':
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeMalformedTree, "unbalanced '}'")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			prevWasField = false
			if len(stack) == 0 {
				return top, nil
			}

		case '(':
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeMalformedTree, "list opener outside of a record")
			}
			top := stack[len(stack)-1]
			if len(top.Children) == 0 {
				return nil, errors.New(errors.ErrCodeMalformedTree, "list opener without a preceding field")
			}
			node := top.Children[len(top.Children)-1]
			node.Kind = KindList
			node.Seq = top.Seq
			stack = append(stack, node)
			prevWasField = false

		case ')':
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeMalformedTree, "unbalanced ')'")
			}
			stack = stack[:len(stack)-1]
			prevWasField = false

		case ':':
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeMalformedTree, "field outside of a record")
			}
			node := &Node{Kind: KindField, Label: scanName(in), Seq: seq}
			seq++
			top := stack[len(stack)-1]
			top.Children = append(top.Children, node)
			node.Index = len(top.Children)
			prevWasField = true

		default:
			// Literal payload and whitespace carry no structure.
		}
	}

	return nil, errors.New(errors.ErrCodeMalformedTree, "unterminated structure")
}
