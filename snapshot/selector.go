/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package snapshot

import (
	"path"
	"strings"
)

// includedExtensions is the fixed allow-list of source and text formats that
// are worth showing to the model.
var includedExtensions = map[string]struct{}{
	".js":    {},
	".ts":    {},
	".tsx":   {},
	".py":    {},
	".rb":    {},
	".go":    {},
	".java":  {},
	".cs":    {},
	".cpp":   {},
	".c":     {},
	".h":     {},
	".hpp":   {},
	".rs":    {},
	".swift": {},
	".php":   {},
	".sh":    {},
	".yml":   {},
	".yaml":  {},
	".json":  {},
	".md":    {},
	".html":  {},
	".css":   {},
}

// excludedSegments removes dependency trees, version-control metadata, and
// vendored code. Matched as substrings of the repo-relative path.
var excludedSegments = []string{
	"node_modules/",
	".git/",
	"vendor/",
}

// Select filters tracked file paths down to the ones the snapshot should
// carry: the lowercased extension must be on the allow-list and no excluded
// segment may appear anywhere in the path. Input order is preserved.
func Select(paths []string) []string {
	var out []string
	for _, p := range paths {
		if shouldInclude(p) {
			out = append(out, p)
		}
	}
	return out
}

func shouldInclude(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	if _, ok := includedExtensions[ext]; !ok {
		return false
	}
	for _, seg := range excludedSegments {
		if strings.Contains(p, seg) {
			return false
		}
	}
	return true
}
