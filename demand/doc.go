// Package demand stores the traffic matrix of a scenario: for every ordered
// node pair (i, j) the volume i wants to deliver to j. Entries are finite and
// non-negative; diagonal input is ignored and reads as zero. The matrix is backed by a gonum
// mat.Dense so totals and scaling reuse gonum's kernels.
package demand
