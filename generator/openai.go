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

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// openAIGenerator calls the OpenAI Responses API.
type openAIGenerator struct {
	client          openai.Client
	model           string
	temperature     float64
	maxOutputTokens int64
}

// NewOpenAI constructs the default backend. Additional request options are
// applied to the client; tests use them to point at a local server.
func NewOpenAI(apiKey, model string, reqOpts ...option.RequestOption) (Generator, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, reqOpts...)

	return &openAIGenerator{
		client:          openai.NewClient(opts...),
		model:           model,
		temperature:     defaultTemperature,
		maxOutputTokens: defaultMaxOutputTokens,
	}, nil
}

// Generate implements Generator.
func (g *openAIGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(g.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				{OfMessage: &responses.EasyInputMessageParam{
					Role:    responses.EasyInputMessageRoleSystem,
					Content: responses.EasyInputMessageContentUnionParam{OfString: openai.String(system)},
				}},
				{OfMessage: &responses.EasyInputMessageParam{
					Role:    responses.EasyInputMessageRoleUser,
					Content: responses.EasyInputMessageContentUnionParam{OfString: openai.String(user)},
				}},
			},
		},
		Temperature:     openai.Float(g.temperature),
		MaxOutputTokens: openai.Int(g.maxOutputTokens),
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI responses API: %w", err)
	}

	// The SDK aggregates the output text across message items. Fall back to
	// the raw response body when no text item is present.
	text := resp.OutputText()
	if text == "" {
		text = resp.RawJSON()
	}
	return strings.TrimSpace(text), nil
}
