package flow_test

import (
	"fmt"

	"github.com/matzehuels/sankeyflow/pkg/flow"
)

func ExampleBuild() {
	g, err := flow.Build(
		[]flow.NodeSpec{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		[]flow.LinkSpec{
			{Source: "A", Target: "C", Value: 10},
			{Source: "B", Target: "C", Value: 5},
		},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	c, _ := g.Node(2)
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("C in:", c.ValueIn)
	fmt.Println("Efficiency:", g.Efficiency())
	// Output:
	// Nodes: 3
	// C in: 15
	// Efficiency: 100
}

func ExampleBuild_unknownNode() {
	_, err := flow.Build(
		[]flow.NodeSpec{{Name: "A"}},
		[]flow.LinkSpec{{Source: "A", Target: "Z", Value: 1, Line: 1}},
	)
	fmt.Println(err)
	// Output:
	// UNKNOWN_NODE: line 1: unknown node "Z"
}
