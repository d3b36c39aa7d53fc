/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package aggregate builds a mode registry from a directory of mode files.
package aggregate

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/sentaurus-syntax/extract"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// Extension is the case-sensitive suffix that marks a mode file.
const Extension = ".xml"

// Options configures aggregation.
type Options struct {
	// Decode selects how invalid UTF-8 is handled. Zero value is DecodeIgnore.
	Decode extract.DecodePolicy

	// Exclude lists glob patterns matched against file base names.
	// Matching files are skipped.
	Exclude []string

	// KeepGoing records unreadable files in Result.Failures instead of
	// aborting the whole run.
	KeepGoing bool
}

// Result holds the outcome of an aggregation.
type Result struct {
	// Registry maps mode names to their extracted categories.
	Registry mode.Registry

	// Files lists the mode files that were read, in listing order.
	Files []string

	// Failures lists files that could not be read (KeepGoing only).
	Failures []*FileError
}

// Err joins all per-file failures, or returns nil if there were none.
func (r *Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Aggregate reads every mode file directly inside dir and extracts its tokens.
//
// Subdirectories are not descended into. When two files derive the same mode
// name, the one listed later wins. A listing failure is always fatal; a read
// failure is fatal unless opts.KeepGoing is set.
func Aggregate(filesystem fs.FileSystem, dir string, opts Options) (*Result, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &PatternError{Pattern: pattern, Err: doublestar.ErrBadPattern}
		}
	}

	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, &Error{Dir: dir, Err: err}
	}

	result := &Result{Registry: make(mode.Registry)}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Extension) {
			continue
		}
		if isExcluded(name, opts.Exclude) {
			logger.Debug("skipping excluded mode file %s", name)
			continue
		}

		filePath := filepath.Join(dir, name)
		data, err := filesystem.ReadFile(filePath)
		if err != nil {
			ferr := &FileError{Path: filePath, Err: err}
			if !opts.KeepGoing {
				return nil, ferr
			}
			logger.Warn("%v", ferr)
			result.Failures = append(result.Failures, ferr)
			continue
		}

		result.Files = append(result.Files, filePath)
		result.Registry[ModeName(name)] = extract.ExtractBytes(data, opts.Decode)
	}

	return result, nil
}

// ModeName derives a mode name from a mode file name by removing the
// extension. A file named only ".xml" keeps its full name.
func ModeName(filename string) string {
	base := path.Base(filepath.ToSlash(filename))
	name := strings.TrimSuffix(base, Extension)
	if name == "" {
		return base
	}
	return name
}

// isExcluded reports whether name matches any pattern. Patterns are
// validated before the directory is listed.
func isExcluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
