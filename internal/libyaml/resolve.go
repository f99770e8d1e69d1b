// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Core schema resolution of plain scalars.
// Only the tag is computed; values are never converted to Go types. The
// composer uses it to tag untagged plain scalars, and the serializer uses it
// to decide when a string must be quoted to stay a string.

package libyaml

import (
	"regexp"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^(?:[-+]?[0-9]+|0o[0-7]+|0x[0-9a-fA-F]+)$`)
	floatPattern = regexp.MustCompile(`^[-+]?(?:\.[0-9]+|[0-9]+(?:\.[0-9]*)?)(?:[eE][-+]?[0-9]+)?$`)

	// YAML 1.1 notations that other parsers still read as numbers.
	base60float       = regexp.MustCompile(`^[-+]?[0-9][0-9_]*(?::[0-5]?[0-9])+(?:\.[0-9_]*)?$`)
	yaml11CommaNumber = regexp.MustCompile(`^[-+]?[0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]*)?$`)
)

// resolve returns the short tag the core schema assigns to a plain scalar.
func resolve(value string) string {
	switch value {
	case "", "~", "null", "Null", "NULL":
		return nullTag
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return boolTag
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF", "-.inf", "-.Inf", "-.INF",
		".nan", ".NaN", ".NAN":
		return floatTag
	}

	// Fast path: every number starts with a sign, a digit or a dot.
	c := value[0]
	if !(c == '+' || c == '-' || c == '.' || c >= '0' && c <= '9') {
		return strTag
	}
	if intPattern.MatchString(value) {
		return intTag
	}
	if floatPattern.MatchString(value) {
		return floatTag
	}
	return strTag
}

// needsQuoting reports whether a string would be read back as something
// else, by this engine or by a YAML 1.1 parser, if written plain.
func needsQuoting(s string) bool {
	return resolve(s) != strTag || isBase60Float(s) || isOldBool(s) || isCommaNumber(s) || s == "<<"
}

// isBase60Float returns whether s is in base 60 notation as defined in
// YAML 1.1.
func isBase60Float(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if !(c == '+' || c == '-' || c >= '0' && c <= '9') || strings.IndexByte(s, ':') < 0 {
		return false
	}
	return base60float.MatchString(s)
}

// isOldBool returns whether s is bool notation as defined in YAML 1.1.
func isOldBool(s string) bool {
	switch s {
	case "y", "Y", "yes", "Yes", "YES", "on", "On", "ON",
		"n", "N", "no", "No", "NO", "off", "Off", "OFF":
		return true
	}
	return false
}

func isCommaNumber(s string) bool {
	if !strings.ContainsRune(s, ',') {
		return false
	}
	return yaml11CommaNumber.MatchString(s)
}
