package transform

import "github.com/matzehuels/sankeyflow/pkg/flow"

// AssignLayers assigns every node of g a layer and stores it on the graph.
//
// # Algorithm
//
//  1. Visit roots (nodes without incoming links) in index order at layer 0
//  2. On first visit mark the node, set layer = max(layer, depth) and recurse
//     into each outgoing link's target at depth+1, in link order
//  3. A node already visited is skipped, even if reached deeper later
//  4. Remaining unvisited nodes are visited in index order at layer 0
//
// Because step 3 never revisits, cycles and self-loops terminate.
//
// Time complexity is O(V + E).
func AssignLayers(g *flow.Graph) []int {
	layers := Layers(g)
	g.SetLayers(layers)
	return layers
}

// Layers computes the layers AssignLayers would assign without modifying g.
func Layers(g *flow.Graph) []int {
	nodes := g.Nodes()
	links := g.Links()
	layers := make([]int, len(nodes))
	visited := make([]bool, len(nodes))

	// Iterative depth-first walk.
	type frame struct {
		node  int
		depth int
		next  int // next outgoing link to follow
	}

	walk := func(start int) {
		if visited[start] {
			return
		}
		visited[start] = true
		layers[start] = max(layers[start], 0)
		stack := []frame{{node: start}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := nodes[top.node].SourceLinks
			if top.next >= len(out) {
				stack = stack[:len(stack)-1]
				continue
			}
			target := links[out[top.next]].Target
			depth := top.depth + 1
			top.next++
			if visited[target] {
				continue
			}
			visited[target] = true
			layers[target] = max(layers[target], depth)
			stack = append(stack, frame{node: target, depth: depth})
		}
	}

	for _, n := range nodes {
		if n.IsSource() {
			walk(n.Index)
		}
	}
	for i := range nodes {
		walk(i)
	}
	return layers
}
