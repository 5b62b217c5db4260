/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultMaxFiles bounds how many files one snapshot may carry.
	DefaultMaxFiles = 150

	// DefaultMaxFileChars bounds each file's embedded excerpt.
	DefaultMaxFileChars = 4000
)

// Builder concatenates labeled, truncated file excerpts into one text blob.
// The snapshot is best-effort context for the model, not an exact mirror:
// unreadable files are skipped and counted, never fatal.
type Builder struct {
	// Dir is the repository root the paths are relative to.
	Dir string

	// MaxFiles caps how many files are included. Zero means DefaultMaxFiles.
	MaxFiles int

	// MaxFileChars caps each excerpt's length in runes. Zero means
	// DefaultMaxFileChars.
	MaxFileChars int
}

// Build reads at most MaxFiles of the given files in order, truncates each to
// MaxFileChars runes, and joins the excerpts with their path delimiters. It
// returns the snapshot text and the number of files skipped as unreadable.
func (b *Builder) Build(files []string) (string, int) {
	maxFiles := b.MaxFiles
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	maxChars := b.MaxFileChars
	if maxChars <= 0 {
		maxChars = DefaultMaxFileChars
	}

	if len(files) > maxFiles {
		files = files[:maxFiles]
	}

	parts := make([]string, 0, len(files))
	skipped := 0
	for _, fp := range files {
		data, err := os.ReadFile(filepath.Join(b.Dir, fp))
		if err != nil {
			skipped++
			continue
		}

		// Drop undecodable bytes rather than failing on them.
		text := strings.ToValidUTF8(string(data), "")
		text = truncateRunes(text, maxChars)

		parts = append(parts, "--- "+fp+" ---\n"+text)
	}

	return strings.Join(parts, "\n\n"), skipped
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
