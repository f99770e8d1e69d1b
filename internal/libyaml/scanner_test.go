// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, in string) []Token {
	t.Helper()
	p := NewParser(NewStringInput(in))
	var tokens []Token
	for {
		var token Token
		require.NoError(t, p.Scan(&token), "input %q", in)
		tokens = append(tokens, token)
		if token.Type == STREAM_END_TOKEN {
			return tokens
		}
	}
}

func tokenTypes(tokens []Token) string {
	var types []string
	for _, token := range tokens {
		types = append(types, strings.TrimSuffix(token.Type.String(), "_TOKEN"))
	}
	return strings.Join(types, " ")
}

func TestScanTokenTypes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "STREAM_START STREAM_END"},
		{"a: b", "STREAM_START BLOCK_MAPPING_START KEY SCALAR VALUE SCALAR BLOCK_END STREAM_END"},
		{"- a\n- b", "STREAM_START BLOCK_SEQUENCE_START BLOCK_ENTRY SCALAR BLOCK_ENTRY SCALAR BLOCK_END STREAM_END"},
		{"[a, b]", "STREAM_START FLOW_SEQUENCE_START SCALAR FLOW_ENTRY SCALAR FLOW_SEQUENCE_END STREAM_END"},
		{"{a: b}", "STREAM_START FLOW_MAPPING_START KEY SCALAR VALUE SCALAR FLOW_MAPPING_END STREAM_END"},
		{"? a\n: b", "STREAM_START BLOCK_MAPPING_START KEY SCALAR VALUE SCALAR BLOCK_END STREAM_END"},
		{"--- &x !t a\n...", "STREAM_START DOCUMENT_START ANCHOR TAG SCALAR DOCUMENT_END STREAM_END"},
		{"%YAML 1.2\n%TAG !e! tag:e,2000:\n---", "STREAM_START VERSION_DIRECTIVE TAG_DIRECTIVE DOCUMENT_START STREAM_END"},
		{"*x", "STREAM_START ALIAS STREAM_END"},
		{"a:\n- b", "STREAM_START BLOCK_MAPPING_START KEY SCALAR VALUE BLOCK_ENTRY SCALAR BLOCK_END STREAM_END"},
		{"# comment only\n", "STREAM_START STREAM_END"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenTypes(scanAll(t, tt.in)), "input %q", tt.in)
	}
}

func TestScanScalars(t *testing.T) {
	tests := []struct {
		in    string
		value string
		style ScalarStyle
	}{
		{"plain", "plain", PLAIN_SCALAR_STYLE},
		{"a\n b", "a b", PLAIN_SCALAR_STYLE},
		{"a\n\n b", "a\nb", PLAIN_SCALAR_STYLE},
		{"a # comment", "a", PLAIN_SCALAR_STYLE},
		{"'it''s'", "it's", SINGLE_QUOTED_SCALAR_STYLE},
		{"'a\n  b'", "a b", SINGLE_QUOTED_SCALAR_STYLE},
		{`"a\nb"`, "a\nb", DOUBLE_QUOTED_SCALAR_STYLE},
		{"\"a\\\n  b\"", "ab", DOUBLE_QUOTED_SCALAR_STYLE},
		{`"\x41\u00e9\U0001F600\0"`, "Aé\U0001F600\x00", DOUBLE_QUOTED_SCALAR_STYLE},
		{`"\N\_\L\P"`, "\u0085\u00a0\u2028\u2029", DOUBLE_QUOTED_SCALAR_STYLE},
		{"|\n a\n b\n", "a\nb\n", LITERAL_SCALAR_STYLE},
		{"|-\n a\n", "a", LITERAL_SCALAR_STYLE},
		{"|+\n a\n\n", "a\n\n", LITERAL_SCALAR_STYLE},
		{"|2\n   a\n", " a\n", LITERAL_SCALAR_STYLE},
		{"|-\n \ta\n b\n", "\ta\nb", LITERAL_SCALAR_STYLE},
		{"|\n  \t\n", "\t\n", LITERAL_SCALAR_STYLE},
		{">\n a\n b\n\n c\n", "a b\nc\n", FOLDED_SCALAR_STYLE},
		{">\n a\n   more\n b\n", "a\n  more\nb\n", FOLDED_SCALAR_STYLE},
	}
	for _, tt := range tests {
		tokens := scanAll(t, tt.in)
		require.Equal(t, SCALAR_TOKEN, tokens[1].Type, "input %q", tt.in)
		assert.Equal(t, tt.value, tokens[1].Value, "input %q", tt.in)
		assert.Equal(t, tt.style, tokens[1].Style, "input %q", tt.in)
	}
}

func TestScanMarks(t *testing.T) {
	tokens := scanAll(t, "key: value\n")
	value := tokens[5]
	require.Equal(t, SCALAR_TOKEN, value.Type)
	assert.Equal(t, Mark{Index: 5, Line: 1, Column: 5}, value.StartMark)
	assert.Equal(t, Mark{Index: 10, Line: 1, Column: 10}, value.EndMark)
}

func TestScanDirectives(t *testing.T) {
	tokens := scanAll(t, "%YAML 1.2\n%TAG !e! tag:e,2000:\n--- !e!x a")
	assert.Equal(t, 1, tokens[1].Major)
	assert.Equal(t, 2, tokens[1].Minor)
	assert.Equal(t, "!e!", tokens[2].Value)
	assert.Equal(t, "tag:e,2000:", tokens[2].Prefix)
	assert.Equal(t, "!e!", tokens[4].Value)
	assert.Equal(t, "x", tokens[4].Suffix)

	// Reserved directives produce no token.
	assert.Equal(t, "STREAM_START DOCUMENT_START SCALAR STREAM_END",
		tokenTypes(scanAll(t, "%FOO bar\n--- a")))
}

func TestScanAfterEnd(t *testing.T) {
	p := NewParser(NewStringInput("a"))
	var token Token
	for token.Type != STREAM_END_TOKEN {
		require.NoError(t, p.Scan(&token))
	}
	assert.Error(t, p.Scan(&token))
}

func TestFormatToken(t *testing.T) {
	tokens := scanAll(t, "&x 'a'")
	assert.Equal(t, "ANCHOR_TOKEN x (line 1, column 1)", FormatToken(&tokens[1]))
	assert.True(t, strings.HasPrefix(FormatToken(&tokens[2]), "SCALAR_TOKEN "))
	assert.True(t, strings.HasSuffix(FormatToken(&tokens[2]), ` "a" (line 1, column 4)`))
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind ErrorKind
		msg  string
	}{
		{"|0\n a", UnexpectedToken, "found an indentation indicator equal to 0"},
		{"|\n\tx", IndentationError, "found a tab character where an indentation space is expected"},
		{"- |\n\tx", IndentationError, "found a tab character where an indentation space is expected"},
		{"[a}", UnbalancedFlowContext, "found '}' where ']' was expected"},
		{"{a]", UnbalancedFlowContext, "found ']' where '}' was expected"},
		{"]", UnbalancedFlowContext, "found unexpected ']' outside of a flow collection"},
		{"[a", UnbalancedFlowContext, "did not find expected ']'"},
		{"{a", UnbalancedFlowContext, "did not find expected '}'"},
		{"%YAML 1\n---", InvalidDirective, "did not find expected digit or '.' character"},
		{"%YAML 1.1 x\n---", InvalidDirective, "did not find expected comment or line break"},
		{"\"a", UnterminatedScalar, "found unexpected end of stream"},
		{"'a\n---\n'", UnterminatedScalar, "found unexpected document indicator"},
		{`"\u12G4"`, InvalidEscape, "did not find expected hexdecimal number"},
		{"@", UnexpectedToken, "found character that cannot start any token"},
	}
	for _, tt := range tests {
		p := NewParser(NewStringInput(tt.in))
		var err error
		for err == nil {
			var token Token
			err = p.Scan(&token)
			if token.Type == STREAM_END_TOKEN {
				break
			}
		}
		if !assert.Error(t, err, "input %q", tt.in) {
			continue
		}
		assert.Equal(t, tt.kind, KindOf(err), "input %q: %v", tt.in, err)
		assert.Contains(t, err.Error(), tt.msg, "input %q", tt.in)
	}
}

// A ':' inside a flow plain scalar is content unless a blank or a flow
// indicator follows it.
func TestScanFlowColon(t *testing.T) {
	tokens := scanAll(t, "[a:b]")
	assert.Equal(t, "STREAM_START FLOW_SEQUENCE_START SCALAR FLOW_SEQUENCE_END STREAM_END", tokenTypes(tokens))
	assert.Equal(t, "a:b", tokens[2].Value)

	tokens = scanAll(t, `{"a":b}`)
	assert.Equal(t, "STREAM_START FLOW_MAPPING_START KEY SCALAR VALUE SCALAR FLOW_MAPPING_END STREAM_END", tokenTypes(tokens))
}
