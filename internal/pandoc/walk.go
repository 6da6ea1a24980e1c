// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import "sort"

type actionKind int

const (
	actUnchanged actionKind = iota
	actReplace
	actDelete
)

// Action is a handler's verdict for one node.
type Action struct {
	kind  actionKind
	nodes []*Node
}

// Unchanged keeps the node and continues into its children.
func Unchanged() Action { return Action{kind: actUnchanged} }

// Delete drops the node and its subtree.
func Delete() Action { return Action{kind: actDelete} }

// Replace substitutes n for the node.
func Replace(n *Node) Action { return Action{kind: actReplace, nodes: []*Node{n}} }

// ReplaceMany substitutes nodes for the node. An empty list deletes it.
func ReplaceMany(nodes ...*Node) Action {
	if len(nodes) == 0 {
		return Delete()
	}
	return Action{kind: actReplace, nodes: nodes}
}

// IsUnchanged reports whether a keeps the node as is.
func (a Action) IsUnchanged() bool { return a.kind == actUnchanged }

// IsDelete reports whether a drops the node.
func (a Action) IsDelete() bool { return a.kind == actDelete }

// Nodes returns the replacement nodes, or nil for Unchanged and Delete.
func (a Action) Nodes() []*Node { return a.nodes }

// Handler decides what happens to each node of a traversal.
type Handler interface {
	Handle(n *Node) Action
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(n *Node) Action

// Handle calls f(n).
func (f HandlerFunc) Handle(n *Node) Action { return f(n) }

// Walk applies h to every node held in a list anywhere in doc, meta first
// and then blocks, rebuilding each list from the returned actions. Kept and
// replacement nodes have their contents walked; deleted subtrees are not
// visited. doc is rewritten in place and returned.
func Walk(doc *Document, h Handler) *Document {
	for _, k := range sortedKeys(doc.Meta) {
		doc.Meta[k] = walkValue(doc.Meta[k], h)
	}
	doc.Blocks = WalkNodes(doc.Blocks, h)
	return doc
}

// WalkNodes applies h to a node list and returns the rebuilt list.
func WalkNodes(nodes []*Node, h Handler) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, handle(n, h)...)
	}
	return out
}

func handle(n *Node, h Handler) []*Node {
	act := h.Handle(n)
	switch act.kind {
	case actDelete:
		return nil
	case actReplace:
		for _, r := range act.nodes {
			r.Content = walkValue(r.Content, h)
		}
		return act.nodes
	default:
		n.Content = walkValue(n.Content, h)
		return []*Node{n}
	}
}

func walkValue(v any, h Handler) any {
	switch x := v.(type) {
	case []any:
		out := make([]any, 0, len(x))
		for _, item := range x {
			if n, ok := item.(*Node); ok {
				for _, r := range handle(n, h) {
					out = append(out, r)
				}
				continue
			}
			out = append(out, walkValue(item, h))
		}
		return out
	case map[string]any:
		for _, k := range sortedKeys(x) {
			x[k] = walkValue(x[k], h)
		}
		return x
	case *Node:
		x.Content = walkValue(x.Content, h)
		return x
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
