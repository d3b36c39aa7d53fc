/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for sentaurus-syntax.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/sentaurus-syntax/cmd/extract"
	"bennypowers.dev/sentaurus-syntax/cmd/generate"
	"bennypowers.dev/sentaurus-syntax/cmd/grammar"
	"bennypowers.dev/sentaurus-syntax/cmd/list"
	"bennypowers.dev/sentaurus-syntax/cmd/version"
	"bennypowers.dev/sentaurus-syntax/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sentaurus-syntax",
	Short: "Generate editor syntax files from Sentaurus mode definitions",
	Long: `sentaurus-syntax extracts keyword, literal and function lists from
XML mode definition files and writes a consolidated keyword reference
plus one TextMate grammar per Sentaurus mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if quiet {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(verbose)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config-root", ".", "Directory containing .config/sentaurus-syntax.{yaml,yml,json}")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress and warning messages")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(extract.Cmd)
	rootCmd.AddCommand(grammar.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
