package scene

import (
	"fmt"
	"strconv"
)

// NodeInfo is the hover payload of a node.
type NodeInfo struct {
	Name     string  `json:"name"`
	ValueIn  float64 `json:"value_in"`
	ValueOut float64 `json:"value_out"`
	Balance  float64 `json:"balance"`
}

// Tooltip formats the info as multi-line text.
func (n NodeInfo) Tooltip() string {
	return fmt.Sprintf("%s\nIn: %s\nOut: %s\nBalance: %s",
		n.Name, formatValue(n.ValueIn), formatValue(n.ValueOut), formatValue(n.Balance))
}

// LinkInfo is the hover payload of a link.
type LinkInfo struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// Tooltip formats the info as multi-line text.
func (l LinkInfo) Tooltip() string {
	return fmt.Sprintf("%s → %s\nFlow: %s\nShare: %.1f%%",
		l.Source, l.Target, formatValue(l.Value), l.Percent)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NodeInfo returns the hover payload of shape idx.
func (s *Scene) NodeInfo(idx int) NodeInfo {
	sh := s.Shapes[idx]
	return NodeInfo{
		Name:     sh.Name,
		ValueIn:  sh.ValueIn,
		ValueOut: sh.ValueOut,
		Balance:  sh.ValueIn - sh.ValueOut,
	}
}

// LinkInfo returns the hover payload of stroke idx.
func (s *Scene) LinkInfo(idx int) LinkInfo {
	st := s.Strokes[idx]
	return LinkInfo{
		Source:  st.SourceName,
		Target:  st.TargetName,
		Value:   st.Value,
		Percent: st.Share,
	}
}

// EventType distinguishes hover transitions.
type EventType int

const (
	Enter EventType = iota
	Leave
)

func (t EventType) String() string {
	if t == Enter {
		return "enter"
	}
	return "leave"
}

// Event is one hover transition. Exactly one of Node and Link is set.
type Event struct {
	Type   EventType
	Target Target
	Node   *NodeInfo
	Link   *LinkInfo
}

// Tooltip returns the text of whichever payload is set.
func (e Event) Tooltip() string {
	switch {
	case e.Node != nil:
		return e.Node.Tooltip()
	case e.Link != nil:
		return e.Link.Tooltip()
	}
	return ""
}

// Hover tracks the item under the pointer.
type Hover struct {
	scene   *Scene
	current Target
}

// NewHover starts tracking with nothing hovered.
func NewHover(s *Scene) *Hover {
	return &Hover{scene: s, current: Target{Kind: None, Index: -1}}
}

// Current returns the hovered target.
func (h *Hover) Current() Target { return h.current }

// Move picks at (x, y) in layout space and returns the leave event of the
// previous target followed by the enter event of the new one. Staying on
// the same target yields no events.
func (h *Hover) Move(x, y float64) []Event {
	return h.set(h.scene.Pick(x, y))
}

// Clear leaves the current target, if any.
func (h *Hover) Clear() []Event {
	return h.set(Target{Kind: None, Index: -1})
}

func (h *Hover) set(next Target) []Event {
	if next == h.current {
		return nil
	}
	var events []Event
	if h.current.Kind != None {
		events = append(events, h.event(Leave, h.current))
	}
	if next.Kind != None {
		events = append(events, h.event(Enter, next))
	}
	h.current = next
	return events
}

func (h *Hover) event(typ EventType, t Target) Event {
	e := Event{Type: typ, Target: t}
	switch t.Kind {
	case NodeTarget:
		info := h.scene.NodeInfo(t.Index)
		e.Node = &info
	case LinkTarget:
		info := h.scene.LinkInfo(t.Index)
		e.Link = &info
	}
	return e
}
