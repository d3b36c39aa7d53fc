/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for sentaurus-syntax.
package generate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/sentaurus-syntax/config"
	"bennypowers.dev/sentaurus-syntax/extract"
	"bennypowers.dev/sentaurus-syntax/fs"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
	"bennypowers.dev/sentaurus-syntax/pipeline"
)

// EnvPrefix prefixes environment variables that override config values,
// e.g. SENTAURUS_SYNTAX_INPUT.
const EnvPrefix = "SENTAURUS_SYNTAX"

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the keyword reference and TextMate grammars",
	Long: `Read every *.xml mode file in the input directory, write the consolidated
keyword reference and one <mode>.tmLanguage.json per target mode into the
output directory.

Settings come from .config/sentaurus-syntax.{yaml,yml,json}, then from
SENTAURUS_SYNTAX_* environment variables, then from flags.

Examples:
  # Use the defaults: modes/ -> syntaxes/
  sentaurus-syntax generate

  # Only the device and process simulators
  sentaurus-syntax generate -i jedit/modes -o extension/syntaxes -m sdevice,sprocess

  # Also write the VS Code manifest fragment and token colors
  sentaurus-syntax generate --contributes --token-colors`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	bindFlags(Cmd.Flags())
}

func bindFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "i", "", "Directory of *.xml mode files (default \""+config.DefaultInput+"\")")
	flags.StringP("output", "o", "", "Output directory, created if absent (default \""+config.DefaultOutput+"\")")
	flags.StringSliceP("modes", "m", nil, "Modes to generate grammars for (default "+strings.Join(config.DefaultModes, ",")+")")
	flags.String("reference", "", "File name of the keyword reference (default \""+config.DefaultReference+"\")")
	flags.StringSlice("exclude", nil, "Glob patterns of mode file names to skip")
	flags.String("decode", "", "Invalid UTF-8 handling: "+strings.Join(extract.ValidPolicies(), ", "))
	flags.Bool("keep-going", false, "Skip unreadable mode files instead of aborting")
	flags.Bool("contributes", false, "Also write a VS Code contributes fragment")
	flags.String("syntax-dir", "", "Grammar directory referenced by the contributes fragment")
	flags.Bool("token-colors", false, "Also write VS Code token color customizations")
}

func run(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("config-root")

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if path := config.Path(filesystem, root); path != "" {
		logger.Debug("using config %s", path)
	}

	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	applyOverrides(v, cfg)
	cfg.Resolve(root)

	result, err := pipeline.Run(filesystem, cfg)
	if err != nil {
		return err
	}

	if len(result.Failures) > 0 {
		return fmt.Errorf("skipped %d unreadable mode file(s)", len(result.Failures))
	}
	return nil
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}
	return v, nil
}

// applyOverrides copies explicitly set flags and environment variables
// over the loaded config.
func applyOverrides(v *viper.Viper, cfg *config.Config) {
	if v.IsSet("input") {
		cfg.Input = v.GetString("input")
	}
	if v.IsSet("output") {
		cfg.Output = v.GetString("output")
	}
	if v.IsSet("modes") {
		cfg.Modes = splitList(v.GetStringSlice("modes"))
	}
	if v.IsSet("reference") {
		cfg.Reference = v.GetString("reference")
	}
	if v.IsSet("exclude") {
		cfg.Exclude = splitList(v.GetStringSlice("exclude"))
	}
	if v.IsSet("decode") {
		cfg.Decode = v.GetString("decode")
	}
	if v.IsSet("keep-going") {
		cfg.KeepGoing = v.GetBool("keep-going")
	}
	if v.IsSet("contributes") {
		cfg.Contributes = v.GetBool("contributes")
	}
	if v.IsSet("syntax-dir") {
		cfg.SyntaxDir = v.GetString("syntax-dir")
	}
	if v.IsSet("token-colors") {
		cfg.TokenColors = v.GetBool("token-colors")
	}
}

// splitList flattens comma-separated entries, which environment variables
// deliver as a single element.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for part := range strings.SplitSeq(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
