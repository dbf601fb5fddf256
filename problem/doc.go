// Package problem reads domino problem files.
//
// Two formats are accepted. The plain text format is
//
//	100
//	1000
//	1 a baa
//	2 ab aa
//	3 bba bb
//
// where the first line is the BFS frontier capacity, the second the total
// exploration capacity and every further non-blank line one domino as
// "<index> <top> <bottom>". Files ending in .yaml or .yml are read as
//
//	frontier_capacity: 100
//	total_capacity: 1000
//	dominos:
//	  - {index: 1, top: a, bottom: baa}
//
// Either capacity may be omitted from a YAML file.
//
// Malformed input wraps ErrFormat with the offending line when known.
package problem
