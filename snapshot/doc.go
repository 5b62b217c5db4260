/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshot selects tracked files and assembles the truncated
// repository excerpt that is embedded into the model prompt.
package snapshot
