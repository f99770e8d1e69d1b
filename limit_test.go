// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/pullyaml"
)

var limitTests = []struct {
	name  string
	data  string
	opts  []pullyaml.ParserOption
	error string
	kind  pullyaml.ErrorKind
}{
	{
		name:  "deeply nested slices",
		data:  strings.Repeat(`[`, 10001),
		error: "yaml: while increasing flow level at line 1, column 10001: exceeded max depth of 10000",
		kind:  pullyaml.NestingTooDeep,
	},
	{
		name:  "deeply nested maps",
		data:  "x: " + strings.Repeat(`{`, 10001),
		error: "yaml: while increasing flow level at line 1, column 10004: exceeded max depth of 10000",
		kind:  pullyaml.NestingTooDeep,
	},
	{
		name:  "flow nesting over a custom limit",
		data:  "[[[a]]]",
		opts:  []pullyaml.ParserOption{pullyaml.WithMaxDepth(2)},
		error: "yaml: while increasing flow level at line 1, column 3: exceeded max depth of 2",
		kind:  pullyaml.NestingTooDeep,
	},
	{
		name: "block nesting over a custom limit",
		data: "a:\n b:\n  c:\n   d: 1\n",
		opts: []pullyaml.ParserOption{pullyaml.WithMaxDepth(2)},
		kind: pullyaml.NestingTooDeep,
	},
	{
		name: "flow nesting at a custom limit",
		data: "[[a]]",
		opts: []pullyaml.ParserOption{pullyaml.WithMaxDepth(2)},
	},
	{
		name: "nested slices at the limit",
		data: strings.Repeat(`[`, 10000) + strings.Repeat(`]`, 10000),
	},
	{
		name: "nested maps at the limit",
		data: "x: " + strings.Repeat(`{a: `, 9999) + "{}" + strings.Repeat(`}`, 9999),
	},
	{
		name: "wide sequence",
		data: "[" + strings.Repeat(`a, `, 100000) + "b]",
	},
}

func TestLimits(t *testing.T) {
	for _, tt := range limitTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pullyaml.NewParser(tt.data, tt.opts...).Events()
			if tt.kind == pullyaml.UnknownError {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, pullyaml.KindOf(err))
			if tt.error != "" {
				assert.Equal(t, tt.error, err.Error())
			}

			// The reader input enforces the same limit.
			_, readerErr := pullyaml.NewParserFromReader(strings.NewReader(tt.data), tt.opts...).Events()
			require.Error(t, readerErr)
			assert.Equal(t, err.Error(), readerErr.Error())
		})
	}
}

func BenchmarkLimits(b *testing.B) {
	for _, tt := range limitTests {
		b.Run(tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = pullyaml.NewParser(tt.data, tt.opts...).Events()
			}
		})
	}
}
