// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// getenv resolves environment variables once configuration is needed.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lmo [text]...",
		Short: "Translate Chinese to English and beautify English text",
		Long: `Translate Chinese text to English, or beautify English text to improve
clarity, conciseness, and coherence, using a chat-completion endpoint.

Translation feeds its output through beautification, so -t produces both
the direct translation and a polished rewrite.`,
		Example: `  # Translate Chinese to English (then beautify the result)
  lmo -t 你好世界

  # Beautify English text
  lmo -b this sentence could flow better

  # Beautify a commit message with GitHub-friendly phrasing
  lmo -b -g fix the bug that crash the server

  # Interactive mode (prompts for the text)
  lmo -t`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, getenv, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.translate, "translate", "t", false, "translate Chinese to English")
	rootCmd.Flags().BoolVarP(&opts.beautify, "beautify", "b", false, "beautify English text")
	rootCmd.Flags().BoolVarP(&opts.github, "github", "g", false, "bias phrasing toward GitHub messages")

	registerVersionCmd(rootCmd)

	return rootCmd
}
