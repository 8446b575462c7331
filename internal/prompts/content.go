// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

package prompts

import "github.com/charmbracelet/huh"

// RunContentForm asks for the text to transform when none was given on
// the command line. It fills the provided pointer with user input.
func RunContentForm(content *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Text").
				Description("Text to translate or beautify").
				Validate(requiredValidator("text")).
				Value(content),
		),
	).WithTheme(Theme()).Run()
}
