// Package harness runs YAML-defined end-to-end scenarios against the
// parser and store.
//
// A scenario feeds natural-language sentences through parser.Extract,
// inserts the extracted records into a fresh database, optionally deletes
// rows, and then asserts on totals, listing contents and the
// revenue-by-description report. The final listing is also compared
// against a golden snapshot in testdata/golden.
//
// Scenarios run against a fresh database, so surrogate ids are assigned
// from 1 in step order; delete steps may rely on that.
package harness
