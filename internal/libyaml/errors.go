// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for YAML scanning, parsing and emitting.
// Provides structured error reporting with a kind and line/column information.

package libyaml

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a parsing session failed.
type ErrorKind int

const (
	UnknownError ErrorKind = iota

	UnterminatedScalar    // A quoted scalar ran into the end of input or a document marker.
	InvalidEscape         // A double-quoted scalar holds an unknown or malformed escape.
	IndentationError      // Tabs or dedents broke the indentation rules.
	UnbalancedFlowContext // A bracket closed the wrong collection or was never closed.
	UnexpectedToken       // The token cannot appear at this position.
	UndefinedAlias        // An alias names an anchor not defined in the document.
	InvalidDirective      // A %YAML or %TAG directive is malformed or incompatible.
	NestingTooDeep        // The document nests deeper than the configured limit.
	ReadFailure           // The character source returned an error.
)

var errorKindStrings = []string{
	UnknownError:          "unknown error",
	UnterminatedScalar:    "unterminated scalar",
	InvalidEscape:         "invalid escape",
	IndentationError:      "indentation error",
	UnbalancedFlowContext: "unbalanced flow context",
	UnexpectedToken:       "unexpected token",
	UndefinedAlias:        "undefined alias",
	InvalidDirective:      "invalid directive",
	NestingTooDeep:        "nesting too deep",
	ReadFailure:           "read failure",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindStrings) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return errorKindStrings[k]
}

type MarkedYAMLError struct {
	Kind ErrorKind

	// optional context
	ContextMark    Mark
	ContextMessage string

	Mark    Mark
	Message string
}

func (e MarkedYAMLError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&builder, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	return builder.String()
}

type ParserError MarkedYAMLError

func (e ParserError) Error() string {
	return MarkedYAMLError(e).Error()
}

type ScannerError MarkedYAMLError

func (e ScannerError) Error() string {
	return MarkedYAMLError(e).Error()
}

type ReaderError struct {
	Offset int
	Err    error
}

func (e ReaderError) Error() string {
	return fmt.Sprintf("yaml: offset %d: %s", e.Offset, e.Err)
}

func (e ReaderError) Unwrap() error {
	return e.Err
}

type EmitterError struct {
	Message string
}

func (e EmitterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

type WriterError struct {
	Err error
}

func (e WriterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Err)
}

func (e WriterError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind carried by err, looking through wrapped errors.
// Errors that did not come from the parser report UnknownError.
func KindOf(err error) ErrorKind {
	var scannerErr ScannerError
	if errors.As(err, &scannerErr) {
		return scannerErr.Kind
	}
	var parserErr ParserError
	if errors.As(err, &parserErr) {
		return parserErr.Kind
	}
	var markedErr MarkedYAMLError
	if errors.As(err, &markedErr) {
		return markedErr.Kind
	}
	var readerErr ReaderError
	if errors.As(err, &readerErr) {
		return ReadFailure
	}
	return UnknownError
}

// MarkOf returns the problem position carried by err, if any.
func MarkOf(err error) (Mark, bool) {
	var scannerErr ScannerError
	if errors.As(err, &scannerErr) {
		return scannerErr.Mark, true
	}
	var parserErr ParserError
	if errors.As(err, &parserErr) {
		return parserErr.Mark, true
	}
	var markedErr MarkedYAMLError
	if errors.As(err, &markedErr) {
		return markedErr.Mark, true
	}
	return Mark{}, false
}
