/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/waigani/diffparser"
)

// FileChange summarizes one file's portion of the generated diff.
type FileChange struct {
	Path    string
	Change  string
	Added   int
	Removed int
}

// Summarize parses a unified diff and returns per-file change counts. The
// summary is informational only: a diff that diffparser cannot handle yields
// an error the caller is expected to tolerate.
func Summarize(diff string) ([]FileChange, error) {
	parsed, err := diffparser.Parse(diff)
	if err != nil {
		return nil, fmt.Errorf("parsing diff: %w", err)
	}

	changes := make([]FileChange, 0, len(parsed.Files))
	for _, f := range parsed.Files {
		fc := FileChange{
			Path:   f.NewName,
			Change: changeKind(f.Mode),
		}
		if fc.Path == "" {
			fc.Path = f.OrigName
		}

		for _, hunk := range f.Hunks {
			for _, line := range hunk.WholeRange.Lines {
				switch line.Mode {
				case diffparser.ADDED:
					fc.Added++
				case diffparser.REMOVED:
					fc.Removed++
				}
			}
		}

		changes = append(changes, fc)
	}
	return changes, nil
}

// Print renders the change summary as a table. Nothing is written for an
// empty summary.
func Print(w io.Writer, changes []FileChange) error {
	if len(changes) == 0 {
		return nil
	}

	table := newSummaryTable(w)
	for _, fc := range changes {
		row := []string{fc.Path, fc.Change, strconv.Itoa(fc.Added), strconv.Itoa(fc.Removed)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending summary row: %w", err)
		}
	}
	return table.Render()
}

func changeKind(mode diffparser.FileMode) string {
	switch mode {
	case diffparser.NEW:
		return "added"
	case diffparser.DELETED:
		return "deleted"
	case diffparser.MODIFIED:
		return "modified"
	default:
		return "unknown"
	}
}
