/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract provides the extract command for sentaurus-syntax.
package extract

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/sentaurus-syntax/aggregate"
	"bennypowers.dev/sentaurus-syntax/convert"
	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	syntaxextract "bennypowers.dev/sentaurus-syntax/extract"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// Cmd is the extract cobra command.
var Cmd = &cobra.Command{
	Use:   "extract <file-or-dir>...",
	Short: "Print the keyword reference for mode files",
	Long: `Extract categorized keywords from mode files and print them as a keyword
reference JSON document. Directories contribute every *.xml file they hold;
files are read regardless of extension.

Examples:
  sentaurus-syntax extract modes/sdevice.xml
  sentaurus-syntax extract modes -m sde -o sde.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	Cmd.Flags().StringSliceP("modes", "m", nil, "Only include these modes")
	Cmd.Flags().String("decode", string(syntaxextract.DecodeIgnore), "Invalid UTF-8 handling (ignore, replace)")
	Cmd.Flags().StringSlice("exclude", nil, "Glob patterns of mode file names to skip in directories")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	modes, _ := cmd.Flags().GetStringSlice("modes")
	decode, _ := cmd.Flags().GetString("decode")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	policy, err := syntaxextract.ParseDecodePolicy(decode)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	registry, err := collect(filesystem, args, aggregate.Options{
		Decode:  policy,
		Exclude: exclude,
	})
	if err != nil {
		return err
	}

	data, err := convert.FormatRegistry(registry, convert.FormatReference, formatter.Options{Modes: modes})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := filesystem.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	logger.Info("Wrote %s", output)
	return nil
}

// collect merges the mode files named by paths into one registry.
// Later paths add to modes contributed by earlier ones.
func collect(filesystem fs.FileSystem, paths []string, opts aggregate.Options) (mode.Registry, error) {
	registry := make(mode.Registry)
	for _, path := range paths {
		info, err := filesystem.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		if info.IsDir() {
			result, err := aggregate.Aggregate(filesystem, path, opts)
			if err != nil {
				return nil, err
			}
			for name, categories := range result.Registry {
				merge(registry, name, categories)
			}
			continue
		}
		if err := collectFile(filesystem, registry, path, opts.Decode); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func collectFile(filesystem fs.FileSystem, registry mode.Registry, path string, policy syntaxextract.DecodePolicy) error {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return &aggregate.FileError{Path: path, Err: err}
	}
	merge(registry, aggregate.ModeName(path), syntaxextract.ExtractBytes(data, policy))
	return nil
}

func merge(registry mode.Registry, name string, categories mode.CategoryMap) {
	dst, ok := registry[name]
	if !ok {
		dst = make(mode.CategoryMap)
		registry[name] = dst
	}
	for category, tokens := range categories {
		for tok := range tokens {
			dst.Add(category, tok)
		}
	}
}
