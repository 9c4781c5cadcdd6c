// Package dot serializes a parsed node tree into a Graphviz DOT document.
//
// Each visible record becomes one DOT node carrying an HTML-like table:
// a header row with the record label and one row per field, tagged with a
// stable port identifier so edges can anchor at individual rows. All edge
// statements are grouped after the node blocks.
//
// Record visibility follows the tree shape: lists and folded fields never
// become blocks of their own, they only contribute rows and edges to their
// logical owner.
package dot
