// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitEvents(events ...Event) (string, error) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)
	for i := range events {
		if err := emitter.Emit(&events[i]); err != nil {
			return buf.String(), err
		}
	}
	return buf.String(), nil
}

func TestEmitFlowSequence(t *testing.T) {
	out, err := emitEvents(
		NewStreamStartEvent(),
		NewDocumentStartEvent(nil, nil, true),
		NewSequenceStartEvent("", "", true, FLOW_SEQUENCE_STYLE),
		NewScalarEvent("", "", "a", true, true, PLAIN_SCALAR_STYLE),
		NewScalarEvent("", "", "b c", true, true, DOUBLE_QUOTED_SCALAR_STYLE),
		NewSequenceEndEvent(),
		NewDocumentEndEvent(true),
		NewStreamEndEvent(),
	)
	require.NoError(t, err)
	assert.Equal(t, "[a, \"b c\"]\n", out)
}

func TestEmitAnchorsAndTags(t *testing.T) {
	out, err := emitEvents(
		NewStreamStartEvent(),
		NewDocumentStartEvent(nil, nil, true),
		NewMappingStartEvent("", "", true, BLOCK_MAPPING_STYLE),
		NewScalarEvent("", "", "a", true, true, PLAIN_SCALAR_STYLE),
		NewScalarEvent("x", "tag:yaml.org,2002:int", "1", false, false, PLAIN_SCALAR_STYLE),
		NewScalarEvent("", "", "b", true, true, PLAIN_SCALAR_STYLE),
		NewAliasEvent("x"),
		NewMappingEndEvent(),
		NewDocumentEndEvent(true),
		NewStreamEndEvent(),
	)
	require.NoError(t, err)
	assert.Equal(t, "a: &x !!int 1\nb: *x\n", out)
}

func TestEmitEventOrderErrors(t *testing.T) {
	_, err := emitEvents(NewScalarEvent("", "", "a", true, true, PLAIN_SCALAR_STYLE))
	assert.EqualError(t, err, "yaml: expected STREAM-START")

	_, err = emitEvents(
		NewStreamStartEvent(),
		NewDocumentStartEvent(nil, nil, true),
		NewScalarEvent("", "", "a", false, false, PLAIN_SCALAR_STYLE),
	)
	assert.EqualError(t, err, "yaml: neither tag nor implicit flags are specified")
}

func TestEmitErrorIsSticky(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)
	event := NewScalarEvent("", "", "a", true, true, PLAIN_SCALAR_STYLE)
	first := emitter.Emit(&event)
	require.Error(t, first)
	event = NewStreamStartEvent()
	assert.Equal(t, first, emitter.Emit(&event))
}

func serialize(t *testing.T, opts SerializerOptions, nodes ...*Node) string {
	t.Helper()
	var buf bytes.Buffer
	s := NewSerializer(&buf, opts)
	for _, n := range nodes {
		require.NoError(t, s.Serialize(n))
	}
	require.NoError(t, s.Finish())
	return buf.String()
}

func TestSerializeImplicitTags(t *testing.T) {
	mapping := &Node{Kind: MappingNode, Content: []*Node{
		{Kind: ScalarNode, Value: "int"}, {Kind: ScalarNode, Value: "12"},
		{Kind: ScalarNode, Value: "str"}, {Kind: ScalarNode, Tag: strTag, Value: "12"},
		{Kind: ScalarNode, Value: "custom"}, {Kind: ScalarNode, Tag: "!thing", Value: "x"},
		{Kind: ScalarNode, Value: "forced"}, {Kind: ScalarNode, Tag: intTag, Style: TaggedStyle, Value: "7"},
		{Kind: ScalarNode, Value: "null"}, nil,
	}}
	assert.Equal(t,
		"int: 12\nstr: '12'\ncustom: !thing x\nforced: !!int 7\nnull:\n",
		serialize(t, SerializerOptions{}, mapping))
}

func TestSerializeIndent(t *testing.T) {
	tree := &Node{Kind: MappingNode, Content: []*Node{
		{Kind: ScalarNode, Value: "a"},
		{Kind: MappingNode, Content: []*Node{
			{Kind: ScalarNode, Value: "b"},
			{Kind: ScalarNode, Value: "c"},
		}},
	}}
	assert.Equal(t, "a:\n  b: c\n", serialize(t, SerializerOptions{}, tree))
	assert.Equal(t, "a:\n     b: c\n", serialize(t, SerializerOptions{Indent: 5}, tree))
}

func TestSerializeDocuments(t *testing.T) {
	doc := &Node{Kind: DocumentNode, Content: []*Node{{Kind: ScalarNode, Value: "a"}}}
	assert.Equal(t, "a\n---\na\n", serialize(t, SerializerOptions{}, doc, doc))
	assert.Equal(t, "", serialize(t, SerializerOptions{}))
}
