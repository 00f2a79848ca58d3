// Package bfs implements breadth-first search on the undirected topology of
// core.Graph. Every link is traversable in both directions and counts as one
// hop regardless of capacity.
//
// Two entry points are provided:
//
//	BFS(g, start, opts...)  – visit order, hop depth and BFS-tree parents.
//	Components(g)           – connected-component label per node.
//
// Path enumeration uses Components to skip demand pairs whose endpoints lie
// in different components; such pairs simply receive zero candidate paths.
//
// Options: WithContext, WithMaxDepth, WithFilterNeighbor, WithOnVisit.
// Complexity: O(n + E) time and O(n) memory for both entry points.
package bfs
