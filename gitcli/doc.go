/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package gitcli adapts the git command-line tool behind the VersionControl
// interface used by the orchestrator.
//
// Each operation maps to exactly one git subcommand. All operations are
// checked except Status, whose porcelain query tolerates a non-zero exit;
// that per-operation tolerance is preserved deliberately because unifying it
// would change no-op versus fatal behavior.
package gitcli
