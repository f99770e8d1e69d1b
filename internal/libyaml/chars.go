// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Character classification helpers used by the scanner and emitter.

package libyaml

// Check if the character is an alphanumerical character, '_' or '-'.
func isAlpha(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r == '_' || r == '-'
}

// Check if the character is a decimal digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Get the value of a digit.
func asDigit(r rune) int {
	return int(r) - '0'
}

// Check if the character is a hex-digit.
func isHex(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'A' && r <= 'F' || r >= 'a' && r <= 'f'
}

// Get the value of a hex-digit.
func asHex(r rune) int {
	switch {
	case r >= 'A' && r <= 'F':
		return int(r) - 'A' + 10
	case r >= 'a' && r <= 'f':
		return int(r) - 'a' + 10
	}
	return int(r) - '0'
}

// Check if the character is ASCII.
func isASCII(r rune) bool {
	return r <= 0x7F
}

// Check if the character can be printed unescaped.
func isPrintable(r rune) bool {
	return r == 0x0A || // . == #x0A
		r >= 0x20 && r <= 0x7E || // #x20 <= . <= #x7E
		r == 0x85 || // . == #x85
		r >= 0xA0 && r <= 0xD7FF || // #xA0 <= . <= #xD7FF
		r >= 0xE000 && r <= 0xFFFD && r != 0xFEFF || // #xE000 <= . <= #xFFFD, except the BOM
		r >= 0x10000 && r <= 0x10FFFF
}

// Check if the character is the end of input.
func isZ(r rune) bool {
	return r == 0
}

// Check if the character is the byte order mark.
func isBOM(r rune) bool {
	return r == '\uFEFF'
}

// Check if the character is a space.
func isSpace(r rune) bool {
	return r == ' '
}

// Check if the character is a tab.
func isTab(r rune) bool {
	return r == '\t'
}

// Check if the character is blank (space or tab).
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// Check if the character is a line break.
func isBreak(r rune) bool {
	return r == '\r' || r == '\n'
}

// Check if the character is a line break or the end of input.
func isBreakOrZero(r rune) bool {
	return r == '\r' || r == '\n' || r == 0
}

// Check if the character is blank, a line break or the end of input.
func isBlankOrZero(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == 0
}

// Check if the character is a flow indicator.
func isFlowIndicator(r rune) bool {
	return r == '[' || r == ']' || r == '{' || r == '}' || r == ','
}

// Check if the character can appear in an anchor or alias name.
func isAnchorChar(r rune) bool {
	return !isBlankOrZero(r) && !isFlowIndicator(r) && !isBOM(r)
}

// Check if the character can appear in a tag URI.
func isURIChar(r rune, flow bool) bool {
	if isAlpha(r) {
		return true
	}
	switch r {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', '.', '%', '!', '~', '*', '\'', '(', ')', '#':
		return true
	case ',', '[', ']':
		return !flow
	}
	return false
}

// utf8Width returns the length of the UTF-8 sequence started by octet, or 0
// when octet cannot start a sequence.
func utf8Width(octet byte) int {
	switch {
	case octet&0x80 == 0x00:
		return 1
	case octet&0xE0 == 0xC0:
		return 2
	case octet&0xF0 == 0xE0:
		return 3
	case octet&0xF8 == 0xF0:
		return 4
	}
	return 0
}
