/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package refactor orchestrates one model-driven refactor run against a git
// repository.
//
// A run has five sequential states: sync the base branch, collect the repo
// snapshot and prompts, generate a diff from the model, apply it on a fresh
// change branch, and commit and publish. The only branching is the diff
// validity check (a non-diff reply ends the run as a clean no-op) and the
// empty-change check after applying. Everything else aborts the run on the
// first error.
package refactor
