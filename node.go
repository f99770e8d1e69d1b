// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml

import "go.yaml.in/pullyaml/internal/libyaml"

//-----------------------------------------------------------------------------
// Node-related type aliases and constants
//-----------------------------------------------------------------------------

type (
	// Node represents a YAML node in the document tree.
	// See internal/libyaml.Node.
	Node = libyaml.Node
	// Kind identifies the type of a YAML node.
	// See internal/libyaml.Kind.
	Kind = libyaml.Kind
	// Style controls the presentation of a YAML node.
	// See internal/libyaml.Style.
	Style = libyaml.Style
	// Accessor is a single step of a tree path.
	// See internal/libyaml.Accessor.
	Accessor = libyaml.Accessor
)

// Re-export Kind constants
const (
	DocumentNode = libyaml.DocumentNode
	SequenceNode = libyaml.SequenceNode
	MappingNode  = libyaml.MappingNode
	ScalarNode   = libyaml.ScalarNode
	AliasNode    = libyaml.AliasNode
)

// Re-export Style constants
const (
	TaggedStyle       = libyaml.TaggedStyle
	DoubleQuotedStyle = libyaml.DoubleQuotedStyle
	SingleQuotedStyle = libyaml.SingleQuotedStyle
	LiteralStyle      = libyaml.LiteralStyle
	FoldedStyle       = libyaml.FoldedStyle
	FlowStyle         = libyaml.FlowStyle
)

// Field returns an accessor selecting the value of a mapping key.
func Field(name string) Accessor { return libyaml.Field(name) }

// Index returns an accessor selecting a sequence item.
func Index(i int) Accessor { return libyaml.Index(i) }

// ParsePath splits a dotted path such as "pod.containers.0.name" into
// accessors. Numeric segments are sequence indexes.
func ParsePath(path string) []Accessor { return libyaml.ParsePath(path) }
