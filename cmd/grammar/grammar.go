/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grammar provides the grammar command for sentaurus-syntax.
package grammar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bennypowers.dev/sentaurus-syntax/config"
	"bennypowers.dev/sentaurus-syntax/convert"
	"bennypowers.dev/sentaurus-syntax/convert/formatter"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
)

// Cmd is the grammar cobra command.
var Cmd = &cobra.Command{
	Use:   "grammar <mode>...",
	Short: "Render editor artifacts from a keyword reference",
	Long: `Render a TextMate grammar, or another editor artifact, from an existing
keyword reference file without re-reading the mode files.

Formats:
  tmlanguage    TextMate grammar for exactly one mode
  reference     keyword reference restricted to the given modes
  contributes   VS Code languages and grammars contribution
  token-colors  VS Code editor.tokenColorCustomizations

Examples:
  sentaurus-syntax grammar sdevice
  sentaurus-syntax grammar sde sdevice -f contributes --syntax-dir ./grammars`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	bindFlags(Cmd.Flags())
}

func bindFlags(flags *pflag.FlagSet) {
	flags.StringP("reference", "r", filepath.Join(config.DefaultOutput, config.DefaultReference), "Keyword reference file")
	flags.StringP("format", "f", string(convert.FormatTMLanguage), "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	flags.StringP("output", "o", "", "Write to file instead of stdout")
	flags.String("syntax-dir", "", "Grammar directory referenced by the contributes format")
	flags.StringToString("color", nil, "Category color overrides for token-colors, e.g. KEYWORD1=#569cd6")
}

func run(cmd *cobra.Command, args []string) error {
	reference, _ := cmd.Flags().GetString("reference")
	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	syntaxDir, _ := cmd.Flags().GetString("syntax-dir")
	colors, _ := cmd.Flags().GetStringToString("color")

	format, err := convert.ParseFormat(formatName)
	if err != nil {
		return err
	}

	filesystem := fs.NewOSFileSystem()
	data, err := filesystem.ReadFile(reference)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", reference, err)
	}
	registry, err := convert.ReadReference(data)
	if err != nil {
		return err
	}

	cfg := &config.Config{Colors: colors}
	categoryColors, err := cfg.CategoryColors()
	if err != nil {
		return err
	}

	out, err := convert.FormatRegistry(registry, format, formatter.Options{
		Modes:     args,
		SyntaxDir: syntaxDir,
		Colors:    categoryColors,
	})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := filesystem.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	logger.Info("Wrote %s", output)
	return nil
}
