// Package view defines the JSON node tree that slot components produce.
// The browser client renders nodes by Kind; the console never emits markup.
package view

// Node is a single element of a rendered view.
type Node struct {
	Kind     string         `json:"kind"`
	Props    map[string]any `json:"props,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []Node         `json:"children,omitempty"`
}

// El creates a node of the given kind.
func El(kind string, props map[string]any, children ...Node) Node {
	return Node{Kind: kind, Props: props, Children: compact(children)}
}

// Text creates a text node.
func Text(s string) Node {
	return Node{Kind: "text", Text: s}
}

// IsZero reports whether n is the empty node.
func (n Node) IsZero() bool {
	return n.Kind == "" && n.Text == "" && len(n.Children) == 0 && len(n.Props) == 0
}

// Find returns the first node (depth-first) with the given kind.
func (n Node) Find(kind string) (Node, bool) {
	if n.Kind == kind {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(kind); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll returns every node (depth-first) with the given kind.
func (n Node) FindAll(kind string) []Node {
	var out []Node
	if n.Kind == kind {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(kind)...)
	}
	return out
}

// compact drops zero nodes so optional slots can be passed unconditionally.
func compact(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := nodes[:0:0]
	for _, n := range nodes {
		if !n.IsZero() {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
