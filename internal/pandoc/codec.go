// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// SupportedMajor is the pandoc-types API major version this package reads.
const SupportedMajor = 1

// MinMinor is the first 1.x API version using the object envelope with a
// "pandoc-api-version" key.
const MinMinor = 17

var (
	// ErrLegacyFormat reports the pre-1.17 [meta, blocks] array envelope.
	ErrLegacyFormat = errors.New("legacy pandoc JSON array format is not supported")

	// ErrUnsupportedVersion reports a missing or incompatible API version.
	ErrUnsupportedVersion = errors.New("unsupported pandoc-api-version")

	// ErrTrailingData reports input left over after the document.
	ErrTrailingData = errors.New("decoding pandoc JSON: trailing data after document")
)

// Decode reads exactly one pandoc JSON document from r; anything but
// whitespace after it is an error.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding pandoc JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, ErrTrailingData
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		if _, isList := raw.([]any); isList {
			return nil, ErrLegacyFormat
		}
		return nil, fmt.Errorf("decoding pandoc JSON: top-level value is %T, want object", raw)
	}

	version, err := parseVersion(obj["pandoc-api-version"])
	if err != nil {
		return nil, err
	}

	doc := &Document{APIVersion: version, Meta: map[string]any{}}

	if m, present := obj["meta"]; present {
		meta, ok := m.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("decoding pandoc JSON: meta is %T, want object", m)
		}
		for k, v := range meta {
			doc.Meta[k] = fromJSON(v)
		}
	}

	if b, present := obj["blocks"]; present {
		blocks, ok := b.([]any)
		if !ok {
			return nil, fmt.Errorf("decoding pandoc JSON: blocks is %T, want array", b)
		}
		doc.Blocks = make([]*Node, 0, len(blocks))
		for i, item := range blocks {
			n, ok := fromJSON(item).(*Node)
			if !ok {
				return nil, fmt.Errorf("decoding pandoc JSON: block %d is not an element", i)
			}
			doc.Blocks = append(doc.Blocks, n)
		}
	}

	return doc, nil
}

// Encode writes doc to w as a single line of pandoc JSON followed by a
// newline.
func Encode(w io.Writer, doc *Document) error {
	meta := doc.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	blocks := doc.Blocks
	if blocks == nil {
		blocks = []*Node{}
	}

	envelope := struct {
		APIVersion []int          `json:"pandoc-api-version"`
		Meta       map[string]any `json:"meta"`
		Blocks     []*Node        `json:"blocks"`
	}{doc.APIVersion, meta, blocks}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(envelope); err != nil {
		return fmt.Errorf("encoding pandoc JSON: %w", err)
	}
	return nil
}

func parseVersion(v any) ([]int, error) {
	parts, ok := v.([]any)
	if !ok || len(parts) == 0 {
		return nil, fmt.Errorf("%w: missing version", ErrUnsupportedVersion)
	}
	version := make([]int, len(parts))
	for i, p := range parts {
		num, ok := p.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: component %d is %T", ErrUnsupportedVersion, i, p)
		}
		n, err := strconv.Atoi(num.String())
		if err != nil {
			return nil, fmt.Errorf("%w: component %d: %v", ErrUnsupportedVersion, i, err)
		}
		version[i] = n
	}
	if version[0] != SupportedMajor || (len(version) > 1 && version[1] < MinMinor) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, version)
	}
	return version, nil
}

// fromJSON converts a generic decoded value into the AST representation,
// turning every {"t": string[, "c": ...]} object into a *Node.
func fromJSON(v any) any {
	switch x := v.(type) {
	case []any:
		for i, item := range x {
			x[i] = fromJSON(item)
		}
		return x
	case map[string]any:
		if n, ok := asNode(x); ok {
			return n
		}
		for k, val := range x {
			x[k] = fromJSON(val)
		}
		return x
	default:
		return v
	}
}

func asNode(m map[string]any) (*Node, bool) {
	tag, ok := m["t"].(string)
	if !ok {
		return nil, false
	}
	content, hasContent := m["c"]
	if len(m) > 2 || (len(m) == 2 && !hasContent) {
		return nil, false
	}
	return &Node{Tag: tag, Content: fromJSON(content)}, true
}
