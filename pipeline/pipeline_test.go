/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/sentaurus-syntax/config"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/contributes"
	"bennypowers.dev/sentaurus-syntax/convert/formatter/tokencolors"
	"bennypowers.dev/sentaurus-syntax/grammar"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
	"bennypowers.dev/sentaurus-syntax/internal/mapfs"
	"bennypowers.dev/sentaurus-syntax/pipeline"
	"bennypowers.dev/sentaurus-syntax/testutil"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func newConfig(modes ...string) *config.Config {
	cfg := config.Default()
	cfg.Input = "/modes"
	cfg.Output = "/out"
	cfg.Modes = modes
	return cfg
}

func TestRun_SingleMode(t *testing.T) {
	log := captureLog(t)
	mfs := mapfs.New()
	mfs.AddFile("/modes/sde.xml", "<MODE>\n<KEYWORD1>run</KEYWORD1>\n<FUNCTION>solve</FUNCTION>\n</MODE>\n", 0644)

	result, err := pipeline.Run(mfs, newConfig("sde"))
	require.NoError(t, err)

	var reference map[string]map[string][]string
	data, err := mfs.ReadFile("/out/all_keywords.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &reference))
	assert.Equal(t, map[string]map[string][]string{
		"sde": {"KEYWORD1": {"run"}, "FUNCTION": {"solve"}},
	}, reference)

	data, err = mfs.ReadFile("/out/sde.tmLanguage.json")
	require.NoError(t, err)
	testutil.AssertGolden(t, "golden/sde.tmLanguage.json", data)

	assert.Equal(t, []string{"sde"}, result.Grammars)
	assert.Empty(t, result.Missing)
	assert.Equal(t, []string{"/out/all_keywords.json", "/out/sde.tmLanguage.json"}, result.Written)
	assert.Equal(t, "Created TextMate grammar for sde\n", log.String())
}

func TestRun_MissingTargetMode(t *testing.T) {
	log := captureLog(t)
	mfs := mapfs.New()
	mfs.AddFile("/modes/sde.xml", "<KEYWORD1>run</KEYWORD1>", 0644)
	mfs.AddFile("/modes/sdevice.xml", "<KEYWORD2>Physics</KEYWORD2>", 0644)

	result, err := pipeline.Run(mfs, newConfig("sde", "nomode", "sdevice"))
	require.NoError(t, err)

	assert.Equal(t, []string{"sde", "sdevice"}, result.Grammars)
	assert.Equal(t, []string{"nomode"}, result.Missing)
	assert.False(t, mfs.Exists("/out/nomode.tmLanguage.json"))
	assert.True(t, mfs.Exists("/out/sde.tmLanguage.json"))
	assert.True(t, mfs.Exists("/out/sdevice.tmLanguage.json"))

	assert.Equal(t,
		"Created TextMate grammar for sde\n"+
			"warning: No keywords found for mode 'nomode'\n"+
			"Created TextMate grammar for sdevice\n",
		log.String())
}

func TestRun_Fixtures(t *testing.T) {
	captureLog(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/modes", "/modes")

	cfg := newConfig(config.DefaultModes...)
	result, err := pipeline.Run(mfs, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"sde", "sdevice", "sprocess", "inspect"}, result.Grammars)
	assert.Equal(t, []string{"emw"}, result.Missing)
	assert.Equal(t, []string{
		"/out/all_keywords.json",
		"/out/inspect.tmLanguage.json",
		"/out/sde.tmLanguage.json",
		"/out/sdevice.tmLanguage.json",
		"/out/sprocess.tmLanguage.json",
	}, outputFiles(mfs))

	// Reference includes categories the grammar ignores
	var reference map[string]map[string][]string
	data, err := mfs.ReadFile("/out/all_keywords.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &reference))
	assert.Equal(t, []string{"pdbSet"}, reference["sprocess"]["KEYWORD5"])
	assert.Equal(t, []string{""}, reference["sprocess"]["LITERAL3"])

	var doc grammar.Document
	data, err = mfs.ReadFile("/out/sprocess.tmLanguage.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Sentaurus SPROCESS", doc.Name)
	assert.Equal(t, "source.sentaurus.sprocess", doc.ScopeName)
	require.Len(t, doc.Patterns, 7)
	assert.Equal(t, grammar.Pattern{Name: "keyword.control.sprocess", Match: `\b(deposit|diffuse|etch|implant)\b`, Token: true}, doc.Patterns[0])
	assert.Equal(t, grammar.Pattern{Name: "keyword.other.sprocess", Match: `\b(line|region)\b`, Token: true}, doc.Patterns[1])
	assert.Equal(t, grammar.Pattern{Name: "string.quoted.sprocess", Match: `\b()\b`, Token: true}, doc.Patterns[2])
}

func TestRun_Reproducible(t *testing.T) {
	captureLog(t)

	var first []byte
	for i := range 5 {
		mfs := testutil.NewFixtureFS(t, "fixtures/modes", "/modes")
		_, err := pipeline.Run(mfs, newConfig("sdevice"))
		require.NoError(t, err)

		data, err := mfs.ReadFile("/out/sdevice.tmLanguage.json")
		require.NoError(t, err)
		if i == 0 {
			first = data
			continue
		}
		assert.Equal(t, string(first), string(data), "run %d differs", i)
	}
}

func TestRun_OutputDirectoryExists(t *testing.T) {
	captureLog(t)
	mfs := mapfs.New()
	mfs.AddFile("/modes/sde.xml", "<KEYWORD1>run</KEYWORD1>", 0644)
	mfs.AddFile("/out/all_keywords.json", "stale", 0644)

	_, err := pipeline.Run(mfs, newConfig("sde"))
	require.NoError(t, err)

	data, err := mfs.ReadFile("/out/all_keywords.json")
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestRun_MissingInputDirectory(t *testing.T) {
	captureLog(t)

	result, err := pipeline.Run(mapfs.New(), newConfig("sde"))
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := newConfig("sde")
	cfg.Decode = "strict"

	_, err := pipeline.Run(mapfs.New(), cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_EditorArtifacts(t *testing.T) {
	captureLog(t)
	mfs := testutil.NewFixtureFS(t, "fixtures/modes", "/modes")

	cfg := newConfig("sde", "emw", "inspect")
	cfg.Contributes = true
	cfg.Colors = map[string]string{"FUNCTION": "tomato"}

	result, err := pipeline.Run(mfs, cfg)
	require.NoError(t, err)
	assert.Contains(t, result.Written, "/out/contributes.json")
	assert.Contains(t, result.Written, "/out/token-colors.json")

	var c contributes.Contributes
	data, err := mfs.ReadFile("/out/contributes.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &c))
	require.Len(t, c.Grammars, 2, "missing modes are not registered")
	assert.Equal(t, "./syntaxes/sde.tmLanguage.json", c.Grammars[0].Path)
	assert.Equal(t, "sentaurus-inspect", c.Grammars[1].Language)

	var colors tokencolors.Document
	data, err = mfs.ReadFile("/out/token-colors.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &colors))
	var found bool
	for _, rule := range colors.TokenColorCustomizations.TextMateRules {
		if rule.Scope == "entity.name.function.inspect" {
			found = true
			assert.Equal(t, "#ff6347", rule.Settings.Foreground)
		}
	}
	assert.True(t, found, "expected a rule for inspect functions")
}

func TestRun_EditorArtifactsWithoutGrammars(t *testing.T) {
	log := captureLog(t)
	mfs := mapfs.New()
	mfs.AddFile("/modes/sde.xml", "<KEYWORD1>run</KEYWORD1>", 0644)

	cfg := newConfig("nomode")
	cfg.Contributes = true
	cfg.TokenColors = true

	result, err := pipeline.Run(mfs, cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Grammars)
	assert.Equal(t, []string{"nomode"}, result.Missing)
	assert.Equal(t, []string{"/out/all_keywords.json"}, result.Written)
	assert.Equal(t, []string{"/out/all_keywords.json"}, outputFiles(mfs))
	assert.Contains(t, log.String(), "skipping editor artifacts")
}

func TestRun_KeepGoing(t *testing.T) {
	log := captureLog(t)
	mfs := mapfs.New()
	mfs.AddFile("/modes/sde.xml", "<KEYWORD1>run</KEYWORD1>", 0644)
	filesystem := &failingFS{MapFileSystem: mfs, path: "/modes/sde.xml"}
	mfs.AddFile("/modes/emw.xml", "<KEYWORD1>field</KEYWORD1>", 0644)

	cfg := newConfig("sde", "emw")
	_, err := pipeline.Run(filesystem, cfg)
	require.Error(t, err, "unreadable file is fatal by default")

	cfg.KeepGoing = true
	result, err := pipeline.Run(filesystem, cfg)
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, []string{"emw"}, result.Grammars)
	assert.Equal(t, []string{"sde"}, result.Missing)
	assert.Contains(t, log.String(), "warning: cannot read mode file /modes/sde.xml")
}

type failingFS struct {
	*mapfs.MapFileSystem
	path string
}

func (f *failingFS) ReadFile(name string) ([]byte, error) {
	if name == f.path {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.MapFileSystem.ReadFile(name)
}

func outputFiles(mfs *mapfs.MapFileSystem) []string {
	var files []string
	for _, f := range mfs.Files() {
		if strings.HasPrefix(f, "/out/") {
			files = append(files, f)
		}
	}
	return files
}
