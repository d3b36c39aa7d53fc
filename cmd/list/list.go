/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for sentaurus-syntax.
package list

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/sentaurus-syntax/aggregate"
	"bennypowers.dev/sentaurus-syntax/config"
	"bennypowers.dev/sentaurus-syntax/convert"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/mode"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and their keyword counts",
	Long: `List every mode with the number of tokens in each category.

Modes come from a keyword reference file when --reference is given,
otherwise from the mode files in the input directory.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("input", "i", config.DefaultInput, "Directory of *.xml mode files")
	Cmd.Flags().String("reference", "", "Read a keyword reference file instead of mode files")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	reference, _ := cmd.Flags().GetString("reference")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	registry, err := load(filesystem, input, reference)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), registry)
	case "table":
		return outputTable(cmd.OutOrStdout(), registry)
	default:
		return fmt.Errorf("unknown format %q: expected table or json", format)
	}
}

func load(filesystem fs.FileSystem, input, reference string) (mode.Registry, error) {
	if reference != "" {
		data, err := filesystem.ReadFile(reference)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", reference, err)
		}
		return convert.ReadReference(data)
	}
	result, err := aggregate.Aggregate(filesystem, input, aggregate.Options{})
	if err != nil {
		return nil, err
	}
	return result.Registry, nil
}

func outputTable(w io.Writer, registry mode.Registry) error {
	categories := mode.Categories()
	fmt.Fprintf(w, "%-16s", "MODE")
	for _, c := range categories {
		fmt.Fprintf(w, " %9s", c)
	}
	fmt.Fprintf(w, " %9s\n", "TOTAL")
	for _, name := range registry.Names() {
		entry := registry[name]
		fmt.Fprintf(w, "%-16s", name)
		for _, c := range categories {
			fmt.Fprintf(w, " %9d", entry[c].Len())
		}
		fmt.Fprintf(w, " %9d\n", entry.Count())
	}
	return nil
}

func outputJSON(w io.Writer, registry mode.Registry) error {
	type modeOutput struct {
		Name       string         `json:"name"`
		Categories map[string]int `json:"categories"`
		Total      int            `json:"total"`
	}

	output := make([]modeOutput, 0, len(registry))
	for _, name := range registry.Names() {
		entry := registry[name]
		counts := make(map[string]int, len(entry))
		for c, tokens := range entry {
			counts[c.String()] = tokens.Len()
		}
		output = append(output, modeOutput{
			Name:       name,
			Categories: counts,
			Total:      entry.Count(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
