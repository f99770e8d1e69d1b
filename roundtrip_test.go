// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"bytes"

	. "gopkg.in/check.v1"

	"go.yaml.in/pullyaml"
)

var roundTripTests = []struct {
	in   string
	out  string
	opts []pullyaml.DumperOption
}{
	{
		in:  "a: 1\nb: [x, z]\nc: {k: v}\n",
		out: "a: 1\nb: [x, z]\nc: {k: v}\n",
	}, {
		in:  "- a\n- b: c\n  d: e\n",
		out: "- a\n- b: c\n  d: e\n",
	}, {
		in:  "- - a\n  - b\n",
		out: "- - a\n  - b\n",
	}, {
		in:  "a: []\nb: {}\n",
		out: "a: []\nb: {}\n",
	}, {
		in:  "a:\nb: ~\n",
		out: "a:\nb: ~\n",
	}, {
		in:  "a: 'x'\nb: \"y\"\n",
		out: "a: 'x'\nb: \"y\"\n",
	}, {
		in:  "key: |\n  line1\n  line2\n",
		out: "key: |\n  line1\n  line2\n",
	}, {
		in:  "a: &x 1\nb: *x\n",
		out: "a: &x 1\nb: *x\n",
	}, {
		in:  "a: 1\n---\nb: 2\n",
		out: "a: 1\n---\nb: 2\n",
	}, {
		in:  "a: !!int 1\nb: !foo bar\n",
		out: "a: !!int 1\nb: !foo bar\n",
	}, {
		in:  "a: '0x123'\n",
		out: "a: '0x123'\n",
	}, {
		in:   "[\"a\\nb\"]\n",
		out:  "[\"a\\nb\"]\n",
		opts: []pullyaml.DumperOption{pullyaml.WithMultilineStrings(true)},
	}, {
		in:   "a:\n  b: 1\n",
		out:  "a:\n    b: 1\n",
		opts: []pullyaml.DumperOption{pullyaml.WithIndent(4)},
	},
}

func (s *S) TestRoundTrip(c *C) {
	for i, item := range roundTripTests {
		c.Logf("test %d: %q", i, item.in)
		docs, err := pullyaml.Load(item.in)
		c.Assert(err, IsNil)

		var buf bytes.Buffer
		err = pullyaml.Dump(&buf, docs, item.opts...)
		c.Assert(err, IsNil)
		c.Assert(buf.String(), Equals, item.out)

		again, err := pullyaml.Load(buf.String())
		c.Assert(err, IsNil)
		c.Assert(again, HasLen, len(docs))
		for j := range docs {
			c.Assert(docs[j].Equal(again[j]), Equals, true, Commentf("document %d", j))
		}
	}
}

func str(value string) *pullyaml.Node {
	return &pullyaml.Node{Kind: pullyaml.ScalarNode, Tag: "!!str", Value: value}
}

var dumpTests = []struct {
	node *pullyaml.Node
	out  string
	opts []pullyaml.DumperOption
}{
	{
		node: str("0x123"),
		out:  "'0x123'\n",
	}, {
		node: str("true"),
		out:  "'true'\n",
	}, {
		node: str("yes"),
		out:  "'yes'\n",
	}, {
		node: str("y"),
		out:  "'y'\n",
	}, {
		node: str("~"),
		out:  "'~'\n",
	}, {
		node: str("1:20"),
		out:  "'1:20'\n",
	}, {
		node: str("\x1b"),
		out:  "\"\\e\"\n",
	}, {
		node: &pullyaml.Node{Kind: pullyaml.SequenceNode, Content: []*pullyaml.Node{str("a\nb")}},
		out:  "- |-\n  a\n  b\n",
		opts: []pullyaml.DumperOption{pullyaml.WithMultilineStrings(true)},
	}, {
		node: &pullyaml.Node{Kind: pullyaml.SequenceNode, Content: []*pullyaml.Node{str("\ta\nb")}},
		out:  "- |-\n  \ta\n  b\n",
		opts: []pullyaml.DumperOption{pullyaml.WithMultilineStrings(true)},
	}, {
		node: &pullyaml.Node{Kind: pullyaml.SequenceNode, Content: []*pullyaml.Node{str("\t\n")}},
		out:  "- |\n  \t\n",
		opts: []pullyaml.DumperOption{pullyaml.WithMultilineStrings(true)},
	}, {
		node: &pullyaml.Node{Kind: pullyaml.SequenceNode, Content: []*pullyaml.Node{str("a\nb")}},
		out:  "- \"a\\nb\"\n",
	}, {
		node: &pullyaml.Node{Kind: pullyaml.MappingNode, Content: []*pullyaml.Node{str("k"), str("x\n")}},
		out:  "k: |\n  x\n",
		opts: []pullyaml.DumperOption{pullyaml.WithMultilineStrings(true)},
	}, {
		node: &pullyaml.Node{Kind: pullyaml.SequenceNode},
		out:  "[]\n",
	}, {
		node: &pullyaml.Node{Kind: pullyaml.MappingNode},
		out:  "{}\n",
	}, {
		node: nil,
		out:  "---\n",
	},
}

func (s *S) TestDumpNode(c *C) {
	for i, item := range dumpTests {
		c.Logf("test %d", i)
		var buf bytes.Buffer
		err := pullyaml.Dump(&buf, []*pullyaml.Node{item.node}, item.opts...)
		c.Assert(err, IsNil)
		c.Assert(buf.String(), Equals, item.out)

		if item.node == nil {
			continue
		}
		again, err := pullyaml.Load(buf.String())
		c.Assert(err, IsNil)
		c.Assert(again, HasLen, 1)
		c.Assert(again[0].Content[0].Equal(item.node), Equals, true)
	}
}
