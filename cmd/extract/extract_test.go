/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"errors"
	"io/fs"
	"slices"
	"testing"

	"bennypowers.dev/sentaurus-syntax/aggregate"
	syntaxextract "bennypowers.dev/sentaurus-syntax/extract"
	"bennypowers.dev/sentaurus-syntax/internal/mapfs"
	"bennypowers.dev/sentaurus-syntax/mode"
)

func TestCollect(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("modes/sde.xml", "<KEYWORD1>sdegeo:create</KEYWORD1>", 0644)
	mfs.AddFile("modes/sdevice.xml", "<KEYWORD2>Physics</KEYWORD2>", 0644)
	mfs.AddFile("modes/notes.txt", "<KEYWORD1>ignored</KEYWORD1>", 0644)
	mfs.AddFile("extra/sde.xml", "<FUNCTION>sde:clear</FUNCTION>", 0644)
	mfs.AddFile("extra/single.mode", "<LITERAL1>Doping</LITERAL1>", 0644)

	registry, err := collect(mfs, []string{"modes", "extra/sde.xml", "extra/single.mode"}, aggregate.Options{
		Decode: syntaxextract.DecodeIgnore,
	})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	if got, want := registry.Names(), []string{"sde", "sdevice", "single.mode"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
	sde := registry["sde"]
	if !sde[mode.Keyword1].Has("sdegeo:create") {
		t.Error("sde should keep KEYWORD1 from the directory")
	}
	if !sde[mode.Function].Has("sde:clear") {
		t.Error("sde should gain FUNCTION from the explicit file")
	}
	if !registry["single.mode"][mode.Literal1].Has("Doping") {
		t.Error("explicit files should be read regardless of extension")
	}
}

func TestCollect_MissingPath(t *testing.T) {
	_, err := collect(mapfs.New(), []string{"nope"}, aggregate.Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("collect(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestMerge_EmptyModeIsKept(t *testing.T) {
	registry := make(mode.Registry)
	merge(registry, "empty", mode.CategoryMap{})
	if _, ok := registry["empty"]; !ok {
		t.Error("a mode without keywords should still be listed")
	}
}
