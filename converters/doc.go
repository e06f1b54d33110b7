// Package converters exports a patrol network as a Graphviz DOT document.
//
// Nodes are junctions ("j<id>"), pinned at their grid position so that
// neato -n renders the maze layout. Consecutive junctions along each road
// are joined by undirected grey edges labelled with their distance; when a
// waypoint sequence is given, the hops of the planned walk are drawn as
// numbered red arrows.
package converters
