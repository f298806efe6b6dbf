package scene

import "github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"

// Samples per stroke when measuring pointer distance.
const pickSegments = 24

// Kind says what a [Target] refers to.
type Kind int

const (
	None Kind = iota
	NodeTarget
	LinkTarget
)

func (k Kind) String() string {
	switch k {
	case NodeTarget:
		return "node"
	case LinkTarget:
		return "link"
	default:
		return "none"
	}
}

// Target is the result of a pick.
type Target struct {
	Kind  Kind
	Index int
}

// Pick returns the item under (x, y) in layout space. Shapes are painted
// above strokes and win ties; within a kind the later item wins.
func (s *Scene) Pick(x, y float64) Target {
	for i := len(s.Shapes) - 1; i >= 0; i-- {
		if s.Shapes[i].Rect.Contains(x, y) {
			return Target{Kind: NodeTarget, Index: i}
		}
	}
	p := layout.Point{X: x, Y: y}
	for i := len(s.Strokes) - 1; i >= 0; i-- {
		st := s.Strokes[i]
		if st.Curve.Distance(p, pickSegments) <= st.Width/2 {
			return Target{Kind: LinkTarget, Index: i}
		}
	}
	return Target{Kind: None, Index: -1}
}
