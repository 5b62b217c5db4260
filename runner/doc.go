/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package runner executes shell commands for the refactor pipeline.
//
// Commands run with shell interpretation enabled and inherit the process
// environment. Checked execution (Run) surfaces non-zero exits as
// *ExitError values carrying the captured stdout and stderr so the entry
// point can print them and terminate with the subprocess's exit code.
// Tolerant execution (RunTolerant) returns stdout regardless of status and
// exists for script-friendly status queries.
package runner
