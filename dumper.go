// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Dumper API for writing YAML documents.
//
// Primary functions:
// - Dump: Write document trees to an io.Writer
// - DumpString: Render document trees as a string
// - NewDumper: Create a streaming dumper to io.Writer

package pullyaml

import (
	"io"
	"strings"

	"go.yaml.in/pullyaml/internal/libyaml"
)

// A Dumper writes document trees to an output stream.
type Dumper struct {
	serializer *libyaml.Serializer
}

// NewDumper returns a new Dumper that writes to w with the given options.
//
// The Dumper should be closed after use to flush all data to w.
func NewDumper(w io.Writer, opts ...DumperOption) (*Dumper, error) {
	c, err := applyDumperOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Dumper{
		serializer: libyaml.NewSerializer(w, libyaml.SerializerOptions{
			Indent:           c.indent,
			LineWidth:        c.lineWidth,
			MultilineStrings: c.multilineStrings,
		}),
	}, nil
}

// Dump writes one document to the stream. A node that is not a document
// node becomes the root of a new document.
//
// The second and subsequent documents are preceded by a "---" separator.
func (d *Dumper) Dump(doc *Node) error {
	return d.serializer.Serialize(doc)
}

// Close closes the Dumper by writing any remaining data.
// It does not write a stream terminating string "...".
func (d *Dumper) Close() error {
	return d.serializer.Finish()
}

// Dump writes docs to w as a multi-document YAML stream.
func Dump(w io.Writer, docs []*Node, opts ...DumperOption) error {
	d, err := NewDumper(w, opts...)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := d.Dump(doc); err != nil {
			return err
		}
	}
	return d.Close()
}

// DumpString renders docs with the default options.
func DumpString(docs ...*Node) (string, error) {
	var b strings.Builder
	if err := Dump(&b, docs); err != nil {
		return "", err
	}
	return b.String(), nil
}
