/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"fmt"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

// Default model identifiers per provider.
const (
	DefaultOpenAIModel    = "gpt-5-codex"
	DefaultAnthropicModel = "claude-sonnet-4-5"
	DefaultGoogleModel    = "gemini-2.5-pro"
)

const (
	// defaultTemperature is a mild determinism bias, not greedy decoding.
	defaultTemperature = 0.2

	// defaultMaxOutputTokens is a large ceiling; a full repo diff can be long.
	defaultMaxOutputTokens = 100000
)

// Generator performs one request to a hosted text-generation API. There is no
// retry, backoff, or partial-response handling: any transport, auth, or API
// error propagates to the caller.
type Generator interface {
	// Generate sends the system and user instructions as two ordered message
	// entries and returns the combined, trimmed response text.
	Generate(ctx context.Context, system, user string) (string, error)
}

// Settings selects and configures a provider backend.
type Settings struct {
	// Provider picks the backend. Empty means ProviderOpenAI.
	Provider string

	// Model overrides the provider's default model identifier.
	Model string

	// APIKey is the provider credential.
	APIKey string
}

// New constructs the Generator for the selected provider.
func New(ctx context.Context, s Settings) (Generator, error) {
	switch s.Provider {
	case "", ProviderOpenAI:
		return NewOpenAI(s.APIKey, s.Model)
	case ProviderAnthropic:
		return NewAnthropic(s.APIKey, s.Model)
	case ProviderGoogle:
		return NewGoogle(ctx, s.APIKey, s.Model)
	default:
		return nil, fmt.Errorf("unknown model provider %q", s.Provider)
	}
}
