/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prompts

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// Library holds the fixed instruction templates. Both instructions are
// deterministic given the snapshot; there is no randomness and no state.
type Library struct {
	System string `yaml:"system"`
	Goal   string `yaml:"goal"`
}

// Load parses the embedded templates.
func Load() (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(templatesYAML, &lib); err != nil {
		return nil, fmt.Errorf("parsing prompt templates: %w", err)
	}
	if strings.TrimSpace(lib.System) == "" || strings.TrimSpace(lib.Goal) == "" {
		return nil, fmt.Errorf("prompt templates missing system or goal instruction")
	}
	return &lib, nil
}

// Build returns the (system, user) instruction pair for one run. The system
// instruction is the diff-only output contract; the user instruction is the
// refactor goal followed by the labeled repo map.
func (l *Library) Build(snapshotText string) (system, user string) {
	system = strings.TrimSpace(l.System)
	user = strings.TrimSpace(l.Goal) + "\n\nREPO MAP (truncated):\n" + snapshotText
	return system, user
}
