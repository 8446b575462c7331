// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/luke396/lmo/internal/config"
	"github.com/luke396/lmo/internal/language"
	"github.com/luke396/lmo/internal/prompts"
	"github.com/luke396/lmo/internal/transform"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	translate bool
	beautify  bool
	github    bool
}

// transformer is the remote-call surface the action gates run against,
// so tests can verify call ordering without a network.
type transformer interface {
	Translate(ctx context.Context, text string, forGit bool) (string, error)
	Beautify(ctx context.Context, text string, forGit bool) (string, error)
}

func runRoot(cmd *cobra.Command, args []string, getenv func(string) string, opts *rootOptions) error {
	if !opts.translate && !opts.beautify {
		// No action requested: hint and leave before touching
		// configuration, so no secrets are required.
		fmt.Fprintln(cmd.OutOrStdout(), "Please specify an action: -t to translate, -b to beautify. Use -h for help.")
		return nil
	}

	text := strings.Join(args, " ")
	if text == "" {
		if err := prompts.RunContentForm(&text); err != nil {
			return err
		}
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		return err
	}

	return runActions(cmd.Context(), cmd.OutOrStdout(), transform.New(cfg), text, opts)
}

// runActions evaluates the two action gates in sequence, translate
// first. The gates are independent; both may fire in one invocation.
func runActions(ctx context.Context, out io.Writer, client transformer, text string, opts *rootOptions) error {
	if opts.translate {
		if err := runTranslate(ctx, out, client, text, opts.github); err != nil {
			return err
		}
	}
	if opts.beautify {
		if err := runBeautify(ctx, out, client, text, opts.github); err != nil {
			return err
		}
	}
	return nil
}

func runTranslate(ctx context.Context, out io.Writer, client transformer, text string, forGit bool) error {
	if language.Detect(text) != language.Chinese {
		fmt.Fprintln(out, "Please provide Chinese text to translate. To beautify English text, use -b.")
		return nil
	}

	english, err := client.Translate(ctx, text, forGit)
	if err != nil {
		return err
	}
	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Translated", Value: english},
	}, "")

	polished, err := client.Beautify(ctx, english, forGit)
	if err != nil {
		return err
	}
	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Beautified", Value: polished},
	}, "")

	return nil
}

func runBeautify(ctx context.Context, out io.Writer, client transformer, text string, forGit bool) error {
	if language.Detect(text) != language.English {
		fmt.Fprintln(out, "Please provide English text to beautify. To translate Chinese text, use -t.")
		return nil
	}

	polished, err := client.Beautify(ctx, text, forGit)
	if err != nil {
		return err
	}
	prompts.PrintResult(out, []prompts.ResultField{
		{Label: "Beautified", Value: polished},
	}, "")

	return nil
}
