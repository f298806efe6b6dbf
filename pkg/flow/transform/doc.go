// Package transform computes derived structure on a flow graph before layout.
//
// # Layering
//
// [AssignLayers] gives every node a horizontal rank. Nodes without incoming
// links start at layer 0 and the walk descends along outgoing links
// depth-first, each node settled the first time it is reached. In diamond
// shaped graphs a node reachable through a short and a long branch keeps the
// depth of whichever branch the walk explores first, so the result depends on
// link order.
//
// Nodes that no root reaches (members of a fully cyclic component) fall back
// to layer 0 and the walk continues from them, so their descendants land
// further right.
package transform
