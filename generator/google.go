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

	"google.golang.org/genai"
)

// googleGenerator calls the Gemini API through the Google GenAI SDK.
type googleGenerator struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewGoogle constructs the Google backend, selected with
// MODEL_PROVIDER=google.
func NewGoogle(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = DefaultGoogleModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Google AI client: %w", err)
	}

	return &googleGenerator{
		client:          client,
		model:           model,
		temperature:     defaultTemperature,
		maxOutputTokens: defaultMaxOutputTokens,
	}, nil
}

// Generate implements Generator.
func (g *googleGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     ptr(g.temperature),
		MaxOutputTokens: g.maxOutputTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: system,
			}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("no text content in Gemini response")
	}
	return strings.TrimSpace(text), nil
}

func ptr[T any](v T) *T {
	return &v
}
