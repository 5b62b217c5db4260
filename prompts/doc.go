/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package prompts assembles the system and user instructions sent to the
// model. The templates are embedded data, not code, so wording changes do
// not touch the pipeline.
package prompts
