// Package nodetree parses textual PostgreSQL node tree dumps.
//
// A node tree dump is the bracket-delimited text produced by the backend's
// debug tracing (e.g. debug_print_parse, debug_print_plan): a single
// top-level {RECORD ...} structure whose fields are introduced by ':' and
// whose list values are wrapped in parentheses.
//
// [Parse] consumes exactly one such structure from a reader and returns the
// root of an in-memory tree. Each tree node carries a stable sequence number
// assigned in input order and the edges discovered while it was the open
// parsing context, so a later emission pass can reference nodes without
// re-walking the input.
package nodetree
