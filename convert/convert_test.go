/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/mode"
)

func TestReadReference_RoundTrip(t *testing.T) {
	original := mode.Registry{
		"sde": {
			mode.Keyword1: mode.NewTokenSet("run", "define", "if"),
			mode.Function: mode.NewTokenSet("solve", ""),
		},
		"sprocess": {
			mode.Literal2: mode.NewTokenSet("1e-3", "&amp;"),
		},
	}

	data, err := FormatRegistry(original, FormatReference, formatter.Options{})
	require.NoError(t, err)

	back, err := ReadReference(data)
	require.NoError(t, err)

	assert.ElementsMatch(t, original.Names(), back.Names())
	for name, categories := range original {
		require.Len(t, back[name], len(categories), "mode %s", name)
		for c, set := range categories {
			assert.True(t, set.Equal(back[name][c]), "mode %s category %s", name, c)
		}
	}
}

func TestReadReference_Comments(t *testing.T) {
	data := []byte(`{
  // hand-maintained additions
  "sde": {
    "KEYWORD1": ["run", "run", "define",],
  },
}`)

	registry, err := ReadReference(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"define", "run"}, registry["sde"].Tokens(mode.Keyword1))
}

func TestReadReference_Invalid(t *testing.T) {
	_, err := ReadReference([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}
