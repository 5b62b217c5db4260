/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package generator sends the instruction pair to a hosted text-generation
// API and returns the combined response text.
//
// Three backends are supported: OpenAI (the default, via the Responses API),
// Anthropic, and Google. All run with temperature 0.2 and a large output
// token ceiling, and none of them retries: a transport or API failure
// propagates to the caller unrecovered.
package generator
