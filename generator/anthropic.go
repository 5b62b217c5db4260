/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMaxTokens is the API ceiling for a single response.
const anthropicMaxTokens = 32000

// anthropicGenerator calls the Anthropic Messages API.
type anthropicGenerator struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewAnthropic constructs the Anthropic backend, selected with
// MODEL_PROVIDER=anthropic.
func NewAnthropic(apiKey, model string, reqOpts ...option.RequestOption) (Generator, error) {
	if apiKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}
	if model == "" {
		model = DefaultAnthropicModel
	}

	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, reqOpts...)

	maxTokens := int64(defaultMaxOutputTokens)
	if maxTokens > anthropicMaxTokens {
		maxTokens = anthropicMaxTokens
	}

	return &anthropicGenerator{
		client:      anthropic.NewClient(opts...),
		model:       model,
		temperature: defaultTemperature,
		maxTokens:   maxTokens,
	}, nil
}

// Generate implements Generator.
func (g *anthropicGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   g.maxTokens,
		Temperature: anthropic.Float(g.temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(user),
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("calling Anthropic messages API: %w", err)
	}

	var sb strings.Builder
	for _, content := range msg.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	if sb.Len() == 0 {
		return strings.TrimSpace(msg.RawJSON()), nil
	}
	return strings.TrimSpace(sb.String()), nil
}
