// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml

import "go.yaml.in/pullyaml/internal/libyaml"

// Error types returned by parsing and dumping.
type (
	// ErrorKind classifies a parse failure.
	ErrorKind = libyaml.ErrorKind

	// ParserError is returned when the event grammar is violated.
	ParserError = libyaml.ParserError

	// ScannerError is returned when the character stream cannot be
	// tokenized.
	ScannerError = libyaml.ScannerError

	// ReaderError wraps a failure of the character source.
	ReaderError = libyaml.ReaderError

	// EmitterError is returned when a tree cannot be written as YAML.
	EmitterError = libyaml.EmitterError

	// WriterError wraps a failure of the output writer.
	WriterError = libyaml.WriterError
)

// Error kinds.
const (
	UnknownError          = libyaml.UnknownError
	UnterminatedScalar    = libyaml.UnterminatedScalar
	InvalidEscape         = libyaml.InvalidEscape
	IndentationError      = libyaml.IndentationError
	UnbalancedFlowContext = libyaml.UnbalancedFlowContext
	UnexpectedToken       = libyaml.UnexpectedToken
	UndefinedAlias        = libyaml.UndefinedAlias
	InvalidDirective      = libyaml.InvalidDirective
	NestingTooDeep        = libyaml.NestingTooDeep
	ReadFailure           = libyaml.ReadFailure
)

// KindOf reports the kind of a parse error, looking through wrapped errors.
// Errors that did not come from parsing report UnknownError.
func KindOf(err error) ErrorKind {
	return libyaml.KindOf(err)
}

// MarkOf returns the position a parse error points at.
func MarkOf(err error) (Mark, bool) {
	return libyaml.MarkOf(err)
}
