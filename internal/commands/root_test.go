// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op     string
	text   string
	forGit bool
}

type stubTransformer struct {
	calls      []call
	translated string
	beautified string
	err        error
}

func (s *stubTransformer) Translate(_ context.Context, text string, forGit bool) (string, error) {
	s.calls = append(s.calls, call{op: "translate", text: text, forGit: forGit})
	return s.translated, s.err
}

func (s *stubTransformer) Beautify(_ context.Context, text string, forGit bool) (string, error) {
	s.calls = append(s.calls, call{op: "beautify", text: text, forGit: forGit})
	return s.beautified, s.err
}

func TestRunActions_TranslateChainsIntoBeautify(t *testing.T) {
	stub := &stubTransformer{translated: "Hello", beautified: "Hello there."}
	var out bytes.Buffer

	opts := &rootOptions{translate: true, github: true}
	err := runActions(context.Background(), &out, stub, "你好", opts)
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	assert.Equal(t, call{op: "translate", text: "你好", forGit: true}, stub.calls[0])
	assert.Equal(t, call{op: "beautify", text: "Hello", forGit: true}, stub.calls[1])

	output := out.String()
	assert.Contains(t, output, "Hello")
	assert.Contains(t, output, "Hello there.")
	assert.Less(t, strings.Index(output, "Translated"), strings.Index(output, "Beautified"))
}

func TestRunActions_TranslateNonChinese(t *testing.T) {
	stub := &stubTransformer{}
	var out bytes.Buffer

	opts := &rootOptions{translate: true}
	err := runActions(context.Background(), &out, stub, "plain english", opts)
	require.NoError(t, err)

	assert.Empty(t, stub.calls)
	assert.Contains(t, out.String(), "Please provide Chinese text to translate")
}

func TestRunActions_BeautifyEnglish(t *testing.T) {
	stub := &stubTransformer{beautified: "Much better."}
	var out bytes.Buffer

	opts := &rootOptions{beautify: true}
	err := runActions(context.Background(), &out, stub, "make this better", opts)
	require.NoError(t, err)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, call{op: "beautify", text: "make this better"}, stub.calls[0])
	assert.Contains(t, out.String(), "Much better.")
}

func TestRunActions_BeautifyChinese(t *testing.T) {
	stub := &stubTransformer{}
	var out bytes.Buffer

	opts := &rootOptions{beautify: true}
	err := runActions(context.Background(), &out, stub, "你好", opts)
	require.NoError(t, err)

	assert.Empty(t, stub.calls)
	assert.Contains(t, out.String(), "Please provide English text to beautify")
}

func TestRunActions_BothFlagsEnglishInput(t *testing.T) {
	// English input: the translate gate prints its hint, the beautify
	// gate still fires.
	stub := &stubTransformer{beautified: "Polished."}
	var out bytes.Buffer

	opts := &rootOptions{translate: true, beautify: true}
	err := runActions(context.Background(), &out, stub, "english only", opts)
	require.NoError(t, err)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, "beautify", stub.calls[0].op)

	output := out.String()
	assert.Less(t,
		strings.Index(output, "Please provide Chinese text"),
		strings.Index(output, "Polished."))
}

func TestRunActions_BothFlagsChineseInput(t *testing.T) {
	// Chinese input: the translate chain fires, then the beautify gate
	// rejects the original text.
	stub := &stubTransformer{translated: "Hello", beautified: "Hello there."}
	var out bytes.Buffer

	opts := &rootOptions{translate: true, beautify: true}
	err := runActions(context.Background(), &out, stub, "你好", opts)
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	assert.Contains(t, out.String(), "Please provide English text to beautify")
}

func TestRunActions_TranslateError(t *testing.T) {
	wantErr := errors.New("connection refused")
	stub := &stubTransformer{err: wantErr}
	var out bytes.Buffer

	opts := &rootOptions{translate: true}
	err := runActions(context.Background(), &out, stub, "你好", opts)
	assert.ErrorIs(t, err, wantErr)
	require.Len(t, stub.calls, 1)
}

func TestRootCmd_NoActionSkipsConfig(t *testing.T) {
	envReads := 0
	getenv := func(string) string {
		envReads++
		return ""
	}

	cmd := NewRootCmd(getenv)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"some", "text"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Zero(t, envReads)
	assert.Contains(t, out.String(), "Please specify an action")
}

func TestRootCmd_Version(t *testing.T) {
	cmd := NewRootCmd(func(string) string { return "" })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "lmo version")
}
