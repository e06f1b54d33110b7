// Package matrix provides the dense integer matrix used to store
// junction-to-junction shortest-path distances.
//
// Dense is row-major over a flat []int64 so that whole rows can be filled
// by independent workers and read back without per-element error checks
// (see Row). Inf marks "no path".
//
// Matrices are best for the small, dense junction sets of a maze where
// O(V²) memory is acceptable.
package matrix
