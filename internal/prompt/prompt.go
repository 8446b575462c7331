// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

// Package prompt builds the instruction pairs sent with each
// chat-completion request.
package prompt

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Prompt is the system/user instruction pair for one request.
// Both fields are always populated.
type Prompt struct {
	System string
	User   string
}

// Translation builds the instruction pair for translating Chinese text
// to English.
func Translation(text string, forGit bool) Prompt {
	return build("translator", "please translate directly without explanation", text, forGit)
}

// Beautification builds the instruction pair for rewriting English text.
func Beautification(text string, forGit bool) Prompt {
	return build("writer", "please rewrite the text directly without explanation", text, forGit)
}

func build(role, task, text string, forGit bool) Prompt {
	system := fmt.Sprintf("You are an expert %s", role)
	if forGit {
		system += ", especially have experience in writing Github user friendly sentence."
	}

	user := fmt.Sprintf(
		"%s the following text, to improve clarity, conciseness, and coherence, "+
			"making them match the expression of native speakers.\n\n%s",
		capitalize(task), text,
	)

	return Prompt{System: system, User: user}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
