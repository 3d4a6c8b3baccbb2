// Package compiler lowers an SCs syntax forest into canonical triples.
//
// A Context owns all mutable conversion state: the alias table, the
// synthetic-name counters, the triple sequence, the extracted link payloads
// and the provenance map. The tree-walk is single-threaded and depth-first.
// Nested content ("*...*" literals) re-enters the same Context, so
// synthetic counters stay monotonic across nesting.
//
// Handler dispatch is an exhaustive type switch over syntax.Node. A node
// kind the switch does not know is a fatal *UnknownNodeError.
//
// Error classes:
//   - *syntax.SyntaxError and *DepthExceededError are per-file: the batch
//     driver reports them, rolls the file back and moves on
//   - everything else (I/O, unknown nodes, non-identifier operands) aborts
//     the run
package compiler
