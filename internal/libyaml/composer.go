// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Composer stage: Builds a node tree from the parser event stream.
// Errors from the parser are returned as they are; the composer itself only
// fails on event sequences the parser can never produce.

package libyaml

import (
	"fmt"
	"io"
)

// Composer produces a node tree out of a parser event stream.
type Composer struct {
	Parser   Parser
	event    Event
	anchors  map[string]*Node
	doneInit bool

	// Textless leaves Line and Column unset on the composed nodes.
	Textless bool
}

// NewComposer creates a new composer reading from input.
func NewComposer(input Input) *Composer {
	return &Composer{
		Parser:  NewParser(input),
		anchors: make(map[string]*Node),
	}
}

func (c *Composer) Destroy() {
	c.event = Event{}
	c.Parser.Delete()
}

func (c *Composer) init() error {
	if c.doneInit {
		return nil
	}
	if err := c.expect(STREAM_START_EVENT); err != nil {
		return err
	}
	c.doneInit = true
	return nil
}

// peek fetches the next event into c.event, if not already there, and
// returns its type.
func (c *Composer) peek() (EventType, error) {
	if c.event.Type != NO_EVENT {
		return c.event.Type, nil
	}
	if err := c.Parser.Parse(&c.event); err != nil {
		return NO_EVENT, err
	}
	return c.event.Type, nil
}

// expect consumes the current event, which must be of type e.
func (c *Composer) expect(e EventType) error {
	t, err := c.peek()
	if err != nil {
		return err
	}
	if t != e {
		return formatParserError(UnexpectedToken,
			fmt.Sprintf("expected %s event but got %s", e, t), c.event.StartMark)
	}
	c.event = Event{}
	return nil
}

func (c *Composer) anchor(n *Node, anchor string) {
	if anchor != "" {
		n.Anchor = anchor
		c.anchors[anchor] = n
	}
}

// Compose returns the next document of the stream, or io.EOF once the
// stream is exhausted.
func (c *Composer) Compose() (*Node, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	t, err := c.peek()
	if err != nil {
		return nil, err
	}
	if t == STREAM_END_EVENT {
		if err := c.expect(STREAM_END_EVENT); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return c.document()
}

// parse composes the node that starts at the current event.
func (c *Composer) parse() (*Node, error) {
	t, err := c.peek()
	if err != nil {
		return nil, err
	}
	switch t {
	case SCALAR_EVENT:
		return c.scalar()
	case ALIAS_EVENT:
		return c.alias()
	case MAPPING_START_EVENT:
		return c.mapping()
	case SEQUENCE_START_EVENT:
		return c.sequence()
	}
	return nil, formatParserError(UnexpectedToken,
		fmt.Sprintf("expected a node but got %s", t), c.event.StartMark)
}

func (c *Composer) node(kind Kind, defaultTag, tag, value string) *Node {
	var style Style
	if tag != "" && tag != "!" {
		tag = shortTag(tag)
		style = TaggedStyle
	} else if defaultTag != "" {
		tag = defaultTag
	} else if kind == ScalarNode {
		tag = resolve(value)
	}
	n := &Node{
		Kind:  kind,
		Tag:   tag,
		Value: value,
		Style: style,
	}
	if !c.Textless {
		n.Line = c.event.StartMark.Line
		n.Column = c.event.StartMark.Column + 1
	}
	return n
}

func (c *Composer) parseChild(parent *Node) (*Node, error) {
	child, err := c.parse()
	if err != nil {
		return nil, err
	}
	parent.Content = append(parent.Content, child)
	return child, nil
}

func (c *Composer) document() (*Node, error) {
	n := c.node(DocumentNode, "", "", "")
	if err := c.expect(DOCUMENT_START_EVENT); err != nil {
		return nil, err
	}
	clear(c.anchors)
	if _, err := c.parseChild(n); err != nil {
		return nil, err
	}
	if err := c.expect(DOCUMENT_END_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Composer) alias() (*Node, error) {
	n := c.node(AliasNode, "", "", c.event.Anchor)
	n.Tag = ""
	if _, ok := c.anchors[n.Value]; !ok {
		return nil, formatParserError(UndefinedAlias,
			fmt.Sprintf("found undefined alias '%s'", n.Value), c.event.StartMark)
	}
	if err := c.expect(ALIAS_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Composer) scalar() (*Node, error) {
	var nodeStyle Style
	switch c.event.ScalarStyle() {
	case DOUBLE_QUOTED_SCALAR_STYLE:
		nodeStyle = DoubleQuotedStyle
	case SINGLE_QUOTED_SCALAR_STYLE:
		nodeStyle = SingleQuotedStyle
	case LITERAL_SCALAR_STYLE:
		nodeStyle = LiteralStyle
	case FOLDED_SCALAR_STYLE:
		nodeStyle = FoldedStyle
	}
	var defaultTag string
	if nodeStyle != 0 || c.event.Tag == "!" {
		defaultTag = strTag
	}
	n := c.node(ScalarNode, defaultTag, c.event.Tag, c.event.Value)
	n.Style |= nodeStyle
	c.anchor(n, c.event.Anchor)
	if err := c.expect(SCALAR_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Composer) sequence() (*Node, error) {
	n := c.node(SequenceNode, seqTag, c.event.Tag, "")
	if c.event.SequenceStyle() == FLOW_SEQUENCE_STYLE {
		n.Style |= FlowStyle
	}
	c.anchor(n, c.event.Anchor)
	if err := c.expect(SEQUENCE_START_EVENT); err != nil {
		return nil, err
	}
	for {
		t, err := c.peek()
		if err != nil {
			return nil, err
		}
		if t == SEQUENCE_END_EVENT {
			break
		}
		if _, err := c.parseChild(n); err != nil {
			return nil, err
		}
	}
	if err := c.expect(SEQUENCE_END_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *Composer) mapping() (*Node, error) {
	n := c.node(MappingNode, mapTag, c.event.Tag, "")
	if c.event.MappingStyle() == FLOW_MAPPING_STYLE {
		n.Style |= FlowStyle
	}
	c.anchor(n, c.event.Anchor)
	if err := c.expect(MAPPING_START_EVENT); err != nil {
		return nil, err
	}
	for {
		t, err := c.peek()
		if err != nil {
			return nil, err
		}
		if t == MAPPING_END_EVENT {
			break
		}
		// Key and value.
		if _, err := c.parseChild(n); err != nil {
			return nil, err
		}
		if _, err := c.parseChild(n); err != nil {
			return nil, err
		}
	}
	if err := c.expect(MAPPING_END_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

// ComposeAll composes every document the composer has left.
func (c *Composer) ComposeAll() ([]*Node, error) {
	var docs []*Node
	for {
		doc, err := c.Compose()
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}
