// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pullyaml_test

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// yamlishPieces are the fragments random inputs are assembled from. They
// favour indicators and breaks so that most inputs reach deep into the
// scanner rather than failing on the first character.
var yamlishPieces = []string{
	"a", "b", "key", "1", "0x1F", "~", " ", "  ", "\t", "\n", "\r\n", "\r",
	":", ": ", "- ", "? ", ",", "[", "]", "{", "}", "#", "# c\n",
	"&x ", "*x", "!", "!!str ", "!e!", "|", "|-", ">", ">+", "'", "''",
	`"`, `\`, `\n`, `\x41`, `☺`, "---", "...", "%YAML 1.2\n", "%TAG ! tag:x,2000:\n",
	"\uFEFF", "é", "\x00", "\xff",
}

func TestInputEquivalenceRandom(t *testing.T) {
	f := fuzz.New().RandSource(getRandSource(t)).Funcs(func(s *string, c fuzz.Continue) {
		n := c.Intn(40)
		var b []byte
		for i := 0; i < n; i++ {
			b = append(b, yamlishPieces[c.Intn(len(yamlishPieces))]...)
		}
		*s = string(b)
	})
	for i := 0; i < 2000; i++ {
		var in string
		f.Fuzz(&in)
		requireEquivalent(t, in)
	}
}

func getRandSource(t *testing.T) rand.Source {
	var seed int64
	if os.Getenv("PULLYAML_SEED") == "" {
		seed = time.Now().UnixNano()
	} else {
		envSeed, err := strconv.Atoi(os.Getenv("PULLYAML_SEED"))
		require.NoError(t, err)
		seed = int64(envSeed)
	}

	t.Log(fmt.Sprintf("Seed used was: [%v]. To reproduce this test failure, re-run the test with `export PULLYAML_SEED=%v`", seed, seed))

	return rand.NewSource(seed)
}
