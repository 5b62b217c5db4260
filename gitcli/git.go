/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package gitcli

import (
	"context"
	"fmt"
	"strings"
)

// Runner is the subset of the command runner the git adapter needs. It is
// satisfied by *runner.Shell and by test fakes.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
	RunTolerant(ctx context.Context, command string) string
}

// VersionControl is the narrow capability the orchestrator depends on, so the
// command-line boundary can be faked in tests without spawning processes.
type VersionControl interface {
	// Checkout switches the working tree to the named branch.
	Checkout(ctx context.Context, branch string) error

	// PullFastForward advances the current branch without creating a merge
	// commit.
	PullFastForward(ctx context.Context) error

	// ListFiles returns the tracked files, one repo-relative path per entry,
	// in the listing's order.
	ListFiles(ctx context.Context) ([]string, error)

	// CreateBranch creates and switches to a new branch.
	CreateBranch(ctx context.Context, branch string) error

	// Apply applies a patch file with whitespace-tolerant, index-updating
	// semantics.
	Apply(ctx context.Context, patchPath string) error

	// Status returns the porcelain status of the working tree. A non-zero
	// exit from the underlying command is tolerated and yields empty output;
	// this tolerance is load-bearing for the no-op detection path.
	Status(ctx context.Context) string

	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// Push publishes the named branch to origin, creating the remote
	// tracking branch.
	Push(ctx context.Context, branch string) error
}

// Git routes git subcommands through a Runner. Pure delegation; the only
// semantics it adds are shell quoting of caller-supplied values.
type Git struct {
	runner Runner
}

// New returns a Git adapter backed by the given runner.
func New(r Runner) *Git {
	return &Git{runner: r}
}

var _ VersionControl = (*Git)(nil)

func (g *Git) git(ctx context.Context, args string) (string, error) {
	return g.runner.Run(ctx, "git "+args)
}

// Checkout implements VersionControl.
func (g *Git) Checkout(ctx context.Context, branch string) error {
	_, err := g.git(ctx, "checkout "+quote(branch))
	return err
}

// PullFastForward implements VersionControl.
func (g *Git) PullFastForward(ctx context.Context) error {
	_, err := g.git(ctx, "pull --ff-only")
	return err
}

// ListFiles implements VersionControl.
func (g *Git) ListFiles(ctx context.Context) ([]string, error) {
	out, err := g.git(ctx, "ls-files")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CreateBranch implements VersionControl.
func (g *Git) CreateBranch(ctx context.Context, branch string) error {
	_, err := g.git(ctx, "checkout -b "+quote(branch))
	return err
}

// Apply implements VersionControl.
func (g *Git) Apply(ctx context.Context, patchPath string) error {
	_, err := g.git(ctx, "apply --index --whitespace=fix "+quote(patchPath))
	return err
}

// Status implements VersionControl. The porcelain query is deliberately
// tolerant of the command's exit status, matching the rest of the pipeline's
// treatment of it as a pure yes/no probe.
func (g *Git) Status(ctx context.Context) string {
	return g.runner.RunTolerant(ctx, "git status --porcelain")
}

// Commit implements VersionControl.
func (g *Git) Commit(ctx context.Context, message string) error {
	_, err := g.git(ctx, fmt.Sprintf("commit -m %s", quote(message)))
	return err
}

// Push implements VersionControl.
func (g *Git) Push(ctx context.Context, branch string) error {
	_, err := g.git(ctx, "push -u origin "+quote(branch))
	return err
}

// quote single-quotes s for POSIX shell interpretation, escaping any embedded
// single quotes. Branch names and commit messages are caller-controlled, not
// user input, but timestamps and messages contain characters the shell cares
// about.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
