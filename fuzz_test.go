// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/pullyaml"
)

// setupSeedCorpus seeds f with a few inline documents and, when the test
// suite data has been downloaded, every test suite input.
func setupSeedCorpus(f *testing.F) {
	for _, in := range []string{
		"a: b\n",
		"- [a, {b: c}]\n- &x d\n- *x\n",
		"--- |\n  literal\n--- >-\n  folded\n",
		"%TAG !e! tag:example.com,2000:\n--- !e!foo \"x\\ty\"\n",
		"? complex\n: value\n",
	} {
		f.Add([]byte(in))
	}
	for _, in := range fuzzRegressions {
		f.Add(in)
	}

	root := filepath.Join("yts", "testdata", "data-2022-01-17")
	if err := filepath.WalkDir(root, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || filepath.Base(p) != "in.yaml" {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			f.Fatalf("could not read test case %q: %s", p, err)
		}
		f.Add(b)
		return nil
	}); err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.Fatalf("could not read test suite: %q: %s", root, err)
	}
}

func FuzzInputEquivalence(f *testing.F) {
	setupSeedCorpus(f)
	f.Fuzz(func(t *testing.T, in []byte) {
		requireEquivalent(t, string(in))
	})
}

func FuzzLoadDump(f *testing.F) {
	setupSeedCorpus(f)
	f.Fuzz(func(t *testing.T, in []byte) {
		docs, err := pullyaml.LoadReader(bufio.NewReader(strings.NewReader(string(in))))
		if err != nil {
			return
		}
		if _, err := pullyaml.DumpString(docs...); err != nil {
			t.Fatalf("could not dump loaded tree: %q: %s", in, err)
		}
	})
}
