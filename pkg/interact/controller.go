// Package interact turns pointer and wheel input into diagram changes.
//
// The [Controller] is a small state machine:
//
//	Idle ──pointer-down on node──▶ DraggingNode ──pointer-up──▶ Idle (full re-layout)
//	Idle ──pointer-down on canvas─▶ PanningCanvas ─pointer-up──▶ Idle
//
// Zoom works in every state. Pointer coordinates are in screen space; the
// controller maps them to layout space through the current view transform.
package interact

import (
	"github.com/matzehuels/sankeyflow/pkg/render/sankey/layout"
	"github.com/matzehuels/sankeyflow/pkg/view"
)

// State is the controller mode.
type State int

const (
	Idle State = iota
	DraggingNode
	PanningCanvas
)

func (s State) String() string {
	switch s {
	case DraggingNode:
		return "dragging"
	case PanningCanvas:
		return "panning"
	default:
		return "idle"
	}
}

// Surface is what the controller drives. Coordinates are in layout space.
type Surface interface {
	// NodeAt returns the node under (x, y).
	NodeAt(x, y float64) (int, bool)
	// NodeRect returns the current rectangle of a node.
	NodeRect(idx int) layout.Rect
	// MoveNode sets a node's top edge and rebuilds only its incident
	// connectors.
	MoveNode(idx int, y0 float64)
	// Relayout recomputes the full geometry.
	Relayout()
	// FrameHeight is the drawable height used to clamp drags.
	FrameHeight() float64
}

type dragState struct {
	node     int
	startY0  float64
	pointerY float64
}

// Controller owns the view transform and routes pointer input.
// It is not safe for concurrent use.
type Controller struct {
	surface Surface
	view    *view.Transform
	state   State
	drag    dragState
	lastX   float64
	lastY   float64
}

// NewController creates an idle controller. v is shared with the caller,
// which reads it when rendering.
func NewController(s Surface, v *view.Transform) *Controller {
	return &Controller{surface: s, view: v}
}

// State returns the current mode.
func (c *Controller) State() State { return c.state }

// DraggedNode returns the node being dragged, if any.
func (c *Controller) DraggedNode() (int, bool) {
	if c.state != DraggingNode {
		return -1, false
	}
	return c.drag.node, true
}

// PointerDown starts a drag over a node or a pan over empty canvas.
// It is ignored unless the controller is idle.
func (c *Controller) PointerDown(x, y float64) State {
	if c.state != Idle {
		return c.state
	}
	p := c.view.Inverse(layout.Point{X: x, Y: y})
	if idx, ok := c.surface.NodeAt(p.X, p.Y); ok {
		c.state = DraggingNode
		c.drag = dragState{
			node:     idx,
			startY0:  c.surface.NodeRect(idx).Y0,
			pointerY: y,
		}
		return c.state
	}
	c.state = PanningCanvas
	c.lastX, c.lastY = x, y
	return c.state
}

// PointerMove updates the dragged node or the pan offset.
func (c *Controller) PointerMove(x, y float64) {
	switch c.state {
	case DraggingNode:
		h := c.surface.NodeRect(c.drag.node).Height()
		dy := y - c.drag.pointerY
		y0 := clamp(c.drag.startY0+dy/c.view.Scale, 0, c.surface.FrameHeight()-h)
		c.surface.MoveNode(c.drag.node, y0)
	case PanningCanvas:
		c.view.Pan(x-c.lastX, y-c.lastY)
		c.lastX, c.lastY = x, y
	}
}

// PointerUp ends the current gesture. Ending a drag triggers a full
// re-layout, which may move the node away from where it was dropped.
func (c *Controller) PointerUp() {
	if c.state == DraggingNode {
		c.surface.Relayout()
	}
	c.state = Idle
	c.drag = dragState{}
}

// Cancel abandons the current gesture without re-layout.
func (c *Controller) Cancel() {
	c.state = Idle
	c.drag = dragState{}
}

// Zoom multiplies the scale by factor, clamped.
func (c *Controller) Zoom(factor float64) { c.view.Zoom(factor) }

// Wheel zooms one notch in the direction of deltaY.
func (c *Controller) Wheel(deltaY float64) { c.view.Wheel(deltaY) }

// Reset returns the view to identity.
func (c *Controller) Reset() { c.view.Reset() }

// View returns the current transform.
func (c *Controller) View() view.Transform { return *c.view }

// clamp bounds v to [lo, hi], preferring lo when hi < lo.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
