/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a per-file summary of the applied diff after a
// successful push. Best effort: failures here never affect the run outcome.
package report
