/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor

import (
	"fmt"
	"time"

	"github.com/codexops/refactorbot/generator"
)

// Config is the run configuration, constructed once at startup from the
// environment and passed by value into the orchestrator. No component reads
// the environment directly.
type Config struct {
	// BaseBranch is the branch to sync from before generating.
	BaseBranch string `env:"BASE_BRANCH,default=master"`

	// ChangeBranch is the branch created for the result. Empty means a
	// timestamp-derived name; the wall clock is the collision-avoidance
	// strategy for per-run uniqueness.
	ChangeBranch string `env:"CHANGE_BRANCH"`

	// Provider selects the generator backend.
	Provider string `env:"MODEL_PROVIDER,default=openai"`

	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-5-codex"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	AnthropicModel  string `env:"ANTHROPIC_MODEL,default=claude-sonnet-4-5"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	GeminiModel  string `env:"GEMINI_MODEL,default=gemini-2.5-pro"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// WorkDir is the repository working directory.
	WorkDir string `env:"WORK_DIR,default=."`

	// SnapshotMaxFiles and SnapshotMaxFileChars bound the repo snapshot.
	// Zero means the snapshot package defaults (150 files, 4000 chars).
	SnapshotMaxFiles     int `env:"SNAPSHOT_MAX_FILES"`
	SnapshotMaxFileChars int `env:"SNAPSHOT_MAX_FILE_CHARS"`
}

// SetDefaults fills the values that cannot be expressed as static tag
// defaults. It is idempotent.
func (c *Config) SetDefaults() {
	if c.ChangeBranch == "" {
		c.ChangeBranch = "codex/refactor-" + time.Now().UTC().Format("20060102150405")
	}
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
}

// Validate fails on a missing credential for the selected provider. This runs
// before any subprocess so a configuration error has no side effects.
func (c Config) Validate() error {
	switch c.Provider {
	case "", generator.ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set")
		}
	case generator.ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY must be set")
		}
	case generator.ProviderGoogle:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set")
		}
	default:
		return fmt.Errorf("unknown model provider %q", c.Provider)
	}
	return nil
}

// GeneratorSettings resolves the model and credential for the selected
// provider.
func (c Config) GeneratorSettings() generator.Settings {
	s := generator.Settings{Provider: c.Provider}
	switch c.Provider {
	case generator.ProviderAnthropic:
		s.Model = c.AnthropicModel
		s.APIKey = c.AnthropicAPIKey
	case generator.ProviderGoogle:
		s.Model = c.GeminiModel
		s.APIKey = c.GeminiAPIKey
	default:
		s.Model = c.OpenAIModel
		s.APIKey = c.OpenAIAPIKey
	}
	return s
}
