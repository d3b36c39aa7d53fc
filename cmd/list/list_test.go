/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/sentaurus-syntax/internal/mapfs"
	"bennypowers.dev/sentaurus-syntax/mode"
)

func testRegistry() mode.Registry {
	return mode.Registry{
		"sdevice": mode.CategoryMap{
			mode.Keyword1: mode.NewTokenSet("Physics", "Solve"),
			mode.Function: mode.NewTokenSet("Plot"),
		},
		"sde": mode.CategoryMap{
			mode.Keyword1: mode.NewTokenSet("sdegeo:create"),
		},
	}
}

func TestOutputTable(t *testing.T) {
	var buf bytes.Buffer
	if err := outputTable(&buf, testRegistry()); err != nil {
		t.Fatalf("outputTable: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "MODE") || !strings.Contains(lines[0], "KEYWORD1") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "sde ") || !strings.HasPrefix(lines[2], "sdevice ") {
		t.Errorf("rows should be sorted by mode name:\n%s", buf.String())
	}
	if fields := strings.Fields(lines[2]); fields[len(fields)-1] != "3" {
		t.Errorf("sdevice total = %s, want 3", fields[len(fields)-1])
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, testRegistry()); err != nil {
		t.Fatalf("outputJSON: %v", err)
	}

	var got []struct {
		Name       string         `json:"name"`
		Categories map[string]int `json:"categories"`
		Total      int            `json:"total"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 2 || got[1].Name != "sdevice" {
		t.Fatalf("unexpected modes: %+v", got)
	}
	if got[1].Categories["KEYWORD1"] != 2 || got[1].Categories["FUNCTION"] != 1 || got[1].Total != 3 {
		t.Errorf("unexpected sdevice counts: %+v", got[1])
	}
}

func TestLoad_Reference(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("all_keywords.json", `{"sde": {"KEYWORD1": ["sdegeo:create"]}}`, 0644)

	registry, err := load(mfs, "modes", "all_keywords.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !registry["sde"][mode.Keyword1].Has("sdegeo:create") {
		t.Errorf("unexpected registry %v", registry)
	}
}

func TestLoad_Directory(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("modes/emw.xml", "<KEYWORD3>Frequency</KEYWORD3>", 0644)

	registry, err := load(mfs, "modes", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !registry["emw"][mode.Keyword3].Has("Frequency") {
		t.Errorf("unexpected registry %v", registry)
	}
}
