// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 luke396

// Package transform sends text through an OpenAI-compatible
// chat-completion endpoint to translate or beautify it.
package transform

import (
	"context"

	"github.com/luke396/lmo/internal/config"
	"github.com/luke396/lmo/internal/prompt"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// NoResponse is returned when the service produces no usable reply.
const NoResponse = "No response."

// Completions is the chat-completion surface the client dispatches
// against. The openai-go chat completion service satisfies it.
type Completions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Client issues single best-effort chat-completion requests. It holds
// no mutable state; a translate-then-beautify chain issues two fresh
// requests.
type Client struct {
	model       string
	completions Completions
}

// New builds a Client against the endpoint and model in cfg.
func New(cfg *config.Config) *Client {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return &Client{
		model:       cfg.Model,
		completions: &client.Chat.Completions,
	}
}

// NewWithCompletions builds a Client over an explicit completion
// service, used by tests to substitute the network.
func NewWithCompletions(model string, completions Completions) *Client {
	return &Client{model: model, completions: completions}
}

// Translate translates Chinese text to English.
func (c *Client) Translate(ctx context.Context, text string, forGit bool) (string, error) {
	return c.dispatch(ctx, prompt.Translation(text, forGit))
}

// Beautify rewrites English text for clarity and coherence.
func (c *Client) Beautify(ctx context.Context, text string, forGit bool) (string, error) {
	return c.dispatch(ctx, prompt.Beautification(text, forGit))
}

// dispatch issues one synchronous request carrying exactly the system
// and user messages of p. Transport and service errors propagate to
// the caller untouched; an empty reply becomes NoResponse.
func (c *Client) dispatch(ctx context.Context, p prompt.Prompt) (string, error) {
	completion, err := c.completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
	})
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return NoResponse, nil
	}
	return completion.Choices[0].Message.Content, nil
}
