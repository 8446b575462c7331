// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

// Package language classifies text by script presence.
package language

import "strings"

// Language is the detected script of a piece of text.
type Language string

const (
	Chinese Language = "Chinese"
	English Language = "English"
	Unknown Language = "Unknown"
)

// Detect classifies s as Chinese if it contains any CJK Unified
// Ideograph, else English if it contains any ASCII letter, else
// Unknown. The Chinese check runs first, so mixed-script text
// containing both counts as Chinese.
func Detect(s string) Language {
	if strings.ContainsFunc(s, isCJKIdeograph) {
		return Chinese
	}
	if strings.ContainsFunc(s, isASCIILetter) {
		return English
	}
	return Unknown
}

func isCJKIdeograph(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
