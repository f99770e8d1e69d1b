// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Emitter construction and event constructors.

package libyaml

import "io"

// NewEmitter creates a new emitter writing to w.
func NewEmitter(w io.Writer) Emitter {
	return Emitter{
		out:        w,
		buffer:     make([]byte, 0, output_buffer_size),
		BestIndent: 2,
		best_width: -1,
		unicode:    true,
	}
}

// Delete an emitter object.
func (emitter *Emitter) Delete() {
	*emitter = Emitter{}
}

// SetIndent sets the indentation increment. Values outside 2..9 fall back
// to 2 when the stream starts.
func (emitter *Emitter) SetIndent(indent int) {
	emitter.BestIndent = indent
}

// SetWidth sets the preferred line width. A negative width disables line
// folding.
func (emitter *Emitter) SetWidth(width int) {
	if width < 0 {
		width = -1
	}
	emitter.best_width = width
}

// SetUnicode selects whether non-ASCII printable characters are written
// unescaped.
func (emitter *Emitter) SetUnicode(unicode bool) {
	emitter.unicode = unicode
}

// NewStreamStartEvent creates a new STREAM-START event.
func NewStreamStartEvent() Event {
	return Event{Type: STREAM_START_EVENT}
}

// NewStreamEndEvent creates a new STREAM-END event.
func NewStreamEndEvent() Event {
	return Event{Type: STREAM_END_EVENT}
}

// NewDocumentStartEvent creates a new DOCUMENT-START event.
func NewDocumentStartEvent(version_directive *VersionDirective, tag_directives []TagDirective, implicit bool) Event {
	return Event{
		Type:             DOCUMENT_START_EVENT,
		versionDirective: version_directive,
		tagDirectives:    tag_directives,
		Implicit:         implicit,
	}
}

// NewDocumentEndEvent creates a new DOCUMENT-END event.
func NewDocumentEndEvent(implicit bool) Event {
	return Event{
		Type:     DOCUMENT_END_EVENT,
		Implicit: implicit,
	}
}

// NewAliasEvent creates a new ALIAS event.
func NewAliasEvent(anchor string) Event {
	return Event{
		Type:   ALIAS_EVENT,
		Anchor: anchor,
	}
}

// NewScalarEvent creates a new SCALAR event. plain_implicit allows the tag
// to be left out when the scalar is written plain, quoted_implicit when it
// is written in any other style.
func NewScalarEvent(anchor, tag, value string, plain_implicit, quoted_implicit bool, style ScalarStyle) Event {
	return Event{
		Type:           SCALAR_EVENT,
		Anchor:         anchor,
		Tag:            tag,
		Value:          value,
		Implicit:       plain_implicit,
		quotedImplicit: quoted_implicit,
		Style:          styleInt(style),
	}
}

// NewSequenceStartEvent creates a new SEQUENCE-START event.
func NewSequenceStartEvent(anchor, tag string, implicit bool, style SequenceStyle) Event {
	return Event{
		Type:     SEQUENCE_START_EVENT,
		Anchor:   anchor,
		Tag:      tag,
		Implicit: implicit,
		Style:    styleInt(style),
	}
}

// NewSequenceEndEvent creates a new SEQUENCE-END event.
func NewSequenceEndEvent() Event {
	return Event{Type: SEQUENCE_END_EVENT}
}

// NewMappingStartEvent creates a new MAPPING-START event.
func NewMappingStartEvent(anchor, tag string, implicit bool, style MappingStyle) Event {
	return Event{
		Type:     MAPPING_START_EVENT,
		Anchor:   anchor,
		Tag:      tag,
		Implicit: implicit,
		Style:    styleInt(style),
	}
}

// NewMappingEndEvent creates a new MAPPING-END event.
func NewMappingEndEvent() Event {
	return Event{Type: MAPPING_END_EVENT}
}
