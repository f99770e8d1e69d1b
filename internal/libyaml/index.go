// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Safe tree indexing.
// Lookups never panic: any step that does not apply yields nil, and every
// later step on nil yields nil again.

package libyaml

import (
	"strconv"
	"strings"
)

// Accessor is a single lookup step, either a mapping field or a sequence
// index.
type Accessor struct {
	field   string
	index   int
	isIndex bool
}

// Field returns an accessor selecting the value of the mapping key name.
func Field(name string) Accessor {
	return Accessor{field: name}
}

// Index returns an accessor selecting the i-th item of a sequence.
func Index(i int) Accessor {
	return Accessor{index: i, isIndex: true}
}

func (a Accessor) String() string {
	if a.isIndex {
		return strconv.Itoa(a.index)
	}
	return a.field
}

// ParsePath splits a dotted path such as "a.0.b" into accessors. Segments
// made of digits become indexes, everything else is a field name. An empty
// path selects the node itself.
func ParsePath(path string) []Accessor {
	if path == "" || path == "." {
		return nil
	}
	var as []Accessor
	for _, seg := range strings.Split(path, ".") {
		if i, err := strconv.Atoi(seg); err == nil && seg[0] != '+' && seg[0] != '-' {
			as = append(as, Index(i))
		} else {
			as = append(as, Field(seg))
		}
	}
	return as
}

// Get applies a single accessor to n. Document nodes forward to their root.
func (n *Node) Get(a Accessor) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0].Get(a)
	}
	if a.isIndex {
		if n.Kind != SequenceNode || a.index < 0 || a.index >= len(n.Content) {
			return nil
		}
		return n.Content[a.index]
	}
	if n.Kind != MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key != nil && key.Kind == ScalarNode && key.Value == a.field {
			return n.Content[i+1]
		}
	}
	return nil
}

// Path applies the accessors in order.
func (n *Node) Path(as ...Accessor) *Node {
	for _, a := range as {
		n = n.Get(a)
	}
	return n
}
