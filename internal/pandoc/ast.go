// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc models the pandoc JSON AST and walks it with node handlers.
// Only the element envelope ({"t": tag, "c": content}) is interpreted; node
// contents are kept as generic JSON values so that element types this package
// knows nothing about pass through untouched.
package pandoc

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Element tags inspected or built by the filters.
const (
	TagPara     = "Para"
	TagRawBlock = "RawBlock"
	TagStr      = "Str"
	TagHeader   = "Header"
	TagSpace    = "Space"
)

// Node is one element of the AST. Content holds the decoded "c" value:
// nil (no "c" key), string, json.Number, bool, []any, map[string]any, or
// *Node for nested elements.
type Node struct {
	Tag     string
	Content any
}

// Document is a decoded pandoc JSON document.
type Document struct {
	APIVersion []int
	Meta       map[string]any
	Blocks     []*Node
}

// Para builds a paragraph holding the given inlines.
func Para(inlines ...*Node) *Node {
	return &Node{Tag: TagPara, Content: nodeList(inlines)}
}

// Str builds a text run.
func Str(s string) *Node {
	return &Node{Tag: TagStr, Content: s}
}

// Space builds an inter-word space.
func Space() *Node {
	return &Node{Tag: TagSpace}
}

// RawBlock builds a raw block of the given format.
func RawBlock(format, text string) *Node {
	return &Node{Tag: TagRawBlock, Content: []any{format, text}}
}

// Header builds a header of the given level with an empty attribute set.
func Header(level int, inlines ...*Node) *Node {
	attr := []any{"", []any{}, []any{}}
	return &Node{Tag: TagHeader, Content: []any{json.Number(strconv.Itoa(level)), attr, nodeList(inlines)}}
}

// RawBlock returns the format and text of a RawBlock node. ok is false for
// any other node or a malformed RawBlock.
func (n *Node) RawBlock() (format, text string, ok bool) {
	if n == nil || n.Tag != TagRawBlock {
		return "", "", false
	}
	pair, isList := n.Content.([]any)
	if !isList || len(pair) != 2 {
		return "", "", false
	}
	format, fok := pair[0].(string)
	text, tok := pair[1].(string)
	if !fok || !tok {
		return "", "", false
	}
	return format, text, true
}

// Children returns the nodes directly held in n's content list, if any.
func (n *Node) Children() []*Node {
	items, ok := n.Content.([]any)
	if !ok {
		return nil
	}
	var out []*Node
	for _, item := range items {
		if child, ok := item.(*Node); ok {
			out = append(out, child)
		}
	}
	return out
}

// Text concatenates the Str content reachable from n. Spaces become a
// single blank.
func (n *Node) Text() string {
	var b bytes.Buffer
	collectText(n, &b)
	return b.String()
}

func collectText(v any, b *bytes.Buffer) {
	switch x := v.(type) {
	case *Node:
		switch x.Tag {
		case TagStr:
			if s, ok := x.Content.(string); ok {
				b.WriteString(s)
			}
			return
		case TagSpace, "SoftBreak", "LineBreak":
			b.WriteByte(' ')
			return
		}
		collectText(x.Content, b)
	case []any:
		for _, item := range x {
			collectText(item, b)
		}
	}
}

// MarshalJSON encodes n as {"t": tag, "c": content}, omitting "c" when the
// node carries no content. HTML characters are not escaped.
func (n *Node) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"t":`)
	tag, err := marshal(n.Tag)
	if err != nil {
		return nil, err
	}
	b.Write(tag)
	if n.Content != nil {
		b.WriteString(`,"c":`)
		c, err := marshal(n.Content)
		if err != nil {
			return nil, err
		}
		b.Write(c)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func nodeList(nodes []*Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
