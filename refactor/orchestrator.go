/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/codexops/refactorbot/generator"
	"github.com/codexops/refactorbot/gitcli"
	"github.com/codexops/refactorbot/prompts"
	"github.com/codexops/refactorbot/report"
	"github.com/codexops/refactorbot/snapshot"
)

const (
	// PatchFile is where the model response is written before applying. It is
	// deliberately left on disk after the run for inspection.
	PatchFile = ".codex.patch"

	// CommitMessage is the fixed message for the change commit.
	CommitMessage = "Nightly automated refactor (Codex)"

	// previewLimit bounds how much of a non-diff response gets printed.
	previewLimit = 2000
)

// Outcome is a successful run's terminal state. A fatal abort surfaces as an
// error instead.
type Outcome string

const (
	// OutcomeNonDiff means the model declined or misformatted; the run made
	// zero repository changes.
	OutcomeNonDiff Outcome = "non-diff response"

	// OutcomeNoChanges means the patch applied but left the working tree
	// identical to HEAD.
	OutcomeNoChanges Outcome = "no changes"

	// OutcomePushed means the change branch was committed and published.
	OutcomePushed Outcome = "branch pushed"
)

// Orchestrator sequences one refactor run: sync, collect, generate, apply,
// commit and publish. Strictly sequential; it assumes exclusive access to the
// working tree for the run's duration.
type Orchestrator struct {
	cfg Config
	vcs gitcli.VersionControl
	gen generator.Generator
	lib *prompts.Library
	out io.Writer
}

// Option configures the orchestrator.
type Option func(*Orchestrator) error

// WithOutput redirects the orchestrator's user-facing messages (non-diff
// previews, no-op notices, the diff summary) away from os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) error {
		if w == nil {
			return errors.New("output writer cannot be nil")
		}
		o.out = w
		return nil
	}
}

// New validates the configuration and constructs an orchestrator.
func New(cfg Config, vcs gitcli.VersionControl, gen generator.Generator, opts ...Option) (*Orchestrator, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case vcs == nil:
		return nil, errors.New("version control cannot be nil")
	case gen == nil:
		return nil, errors.New("generator cannot be nil")
	}

	lib, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		cfg: cfg,
		vcs: vcs,
		gen: gen,
		lib: lib,
		out: os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	return o, nil
}

// Run executes one refactor pass and returns its terminal state. Any error is
// fatal to the run; there is no retry or partial-failure recovery.
func (o *Orchestrator) Run(ctx context.Context) (Outcome, error) {
	log := clog.FromContext(ctx)

	// Sync.
	if err := o.vcs.Checkout(ctx, o.cfg.BaseBranch); err != nil {
		return "", err
	}
	if err := o.vcs.PullFastForward(ctx); err != nil {
		return "", err
	}

	// Collect.
	tracked, err := o.vcs.ListFiles(ctx)
	if err != nil {
		return "", err
	}
	files := snapshot.Select(tracked)

	builder := &snapshot.Builder{
		Dir:          o.cfg.WorkDir,
		MaxFiles:     o.cfg.SnapshotMaxFiles,
		MaxFileChars: o.cfg.SnapshotMaxFileChars,
	}
	snap, skipped := builder.Build(files)
	log.Infof("Snapshot: %d candidate files, %d skipped as unreadable", len(files), skipped)

	system, user := o.lib.Build(snap)

	// Generate.
	diff, err := o.gen.Generate(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("generating diff: %w", err)
	}

	if !looksLikeDiff(diff) {
		fmt.Fprintln(o.out, "Model did not return a unified diff; exiting without changes.")
		fmt.Fprintln(o.out, preview(diff))
		return OutcomeNonDiff, nil
	}

	// Apply.
	if err := o.vcs.CreateBranch(ctx, o.cfg.ChangeBranch); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(o.cfg.WorkDir, PatchFile), []byte(diff), 0o644); err != nil {
		return "", fmt.Errorf("writing patch file: %w", err)
	}
	if err := o.vcs.Apply(ctx, PatchFile); err != nil {
		return "", err
	}

	// Commit and publish.
	if o.vcs.Status(ctx) == "" {
		fmt.Fprintln(o.out, "No changes to commit.")
		return OutcomeNoChanges, nil
	}
	if err := o.vcs.Commit(ctx, CommitMessage); err != nil {
		return "", err
	}
	if err := o.vcs.Push(ctx, o.cfg.ChangeBranch); err != nil {
		return "", err
	}

	fmt.Fprintln(o.out, "Branch pushed; PR step will create/update the pull request.")
	o.printSummary(ctx, diff)

	return OutcomePushed, nil
}

// looksLikeDiff reports whether the response starts with one of the two
// recognized unified-diff header markers.
func looksLikeDiff(s string) bool {
	return strings.HasPrefix(s, "diff --git") || strings.HasPrefix(s, "--- ")
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit])
}

// printSummary renders the per-file diff table. Best effort only.
func (o *Orchestrator) printSummary(ctx context.Context, diff string) {
	changes, err := report.Summarize(diff)
	if err != nil {
		clog.FromContext(ctx).Debugf("Skipping diff summary: %v", err)
		return
	}
	if err := report.Print(o.out, changes); err != nil {
		clog.FromContext(ctx).Debugf("Skipping diff summary: %v", err)
	}
}
