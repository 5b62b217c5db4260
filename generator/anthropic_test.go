/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func TestAnthropicGenerate(t *testing.T) {
	ctx := context.Background()

	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5",
			"content": [{"type": "text", "text": "diff --git a/x b/x"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer server.Close()

	g, err := NewAnthropic("sk-ant", "claude-sonnet-4-5",
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0))
	if err != nil {
		t.Fatalf("NewAnthropic: %v", err)
	}

	got, err := g.Generate(ctx, "diff only", "refactor please")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "diff --git a/x b/x" {
		t.Fatalf("response: got %q", got)
	}

	if captured["model"] != "claude-sonnet-4-5" {
		t.Errorf("model: got %v", captured["model"])
	}
	if temp, ok := captured["temperature"].(float64); !ok || temp != 0.2 {
		t.Errorf("temperature: got %v", captured["temperature"])
	}
	if m, ok := captured["max_tokens"].(float64); !ok || m != float64(anthropicMaxTokens) {
		t.Errorf("max_tokens: got %v", captured["max_tokens"])
	}
	msgs, ok := captured["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages: got %v", captured["messages"])
	}
	if role := msgs[0].(map[string]any)["role"]; role != "user" {
		t.Errorf("message role: got %v", role)
	}
}
