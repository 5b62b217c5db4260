/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package refactor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/codexops/refactorbot/gitcli"
	"github.com/codexops/refactorbot/runner"
	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// initFixture builds a working repository with one commit on master and a
// bare origin it tracks, so checkout/pull/push run against real remotes.
func initFixture(t *testing.T) (workDir, bareDir string) {
	t.Helper()
	ctx := context.Background()

	bareDir = t.TempDir()
	_, err := git.PlainInit(bareDir, true)
	require.NoError(t, err)

	workDir = t.TempDir()
	repo, err := git.PlainInit(workDir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(workDir, "main.go"), []byte("package main\n\nfunc main() {}\n"), 0o644))
	_, err = wt.Add("main.go")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("master"))))

	_, err = repo.CreateRemote(&gitcfg.RemoteConfig{
		Name: "origin",
		URLs: []string{bareDir},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Push(&git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitcfg.RefSpec{"refs/heads/master:refs/heads/master"},
	}))
	require.NoError(t, repo.CreateBranch(&gitcfg.Branch{
		Name:   "master",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("master"),
	}))

	// The CLI commit step needs an identity.
	sh := &runner.Shell{Dir: workDir, Echo: &bytes.Buffer{}}
	_, err = sh.Run(ctx, "git config user.email test@example.com")
	require.NoError(t, err)
	_, err = sh.Run(ctx, "git config user.name Test")
	require.NoError(t, err)

	return workDir, bareDir
}

func e2eConfig(workDir string) Config {
	return Config{
		BaseBranch:   "master",
		ChangeBranch: "codex/refactor-e2e",
		OpenAIAPIKey: "sk-test",
		WorkDir:      workDir,
	}
}

const e2eDiff = "diff --git a/main.go b/main.go\n" +
	"--- a/main.go\n" +
	"+++ b/main.go\n" +
	"@@ -1,3 +1,4 @@\n" +
	" package main\n" +
	" \n" +
	"+// entry point\n" +
	" func main() {}\n"

func TestEndToEndPush(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	workDir, bareDir := initFixture(t)

	sh := &runner.Shell{Dir: workDir, Echo: &bytes.Buffer{}}
	o, err := New(e2eConfig(workDir), gitcli.New(sh), &fakeGenerator{response: e2eDiff}, WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	outcome, err := o.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, OutcomePushed, outcome)

	// The change branch exists on the remote and carries the fixed message.
	bare, err := git.PlainOpen(bareDir)
	require.NoError(t, err)
	ref, err := bare.Reference(plumbing.NewBranchReferenceName("codex/refactor-e2e"), true)
	require.NoError(t, err, "change branch missing on the remote")
	commit, err := bare.CommitObject(ref.Hash())
	require.NoError(t, err)
	require.Contains(t, commit.Message, CommitMessage)

	// The patch file is left behind in the working tree.
	_, err = os.Stat(filepath.Join(workDir, PatchFile))
	require.NoError(t, err)

	// The applied change is in the pushed tree.
	data, err := os.ReadFile(filepath.Join(workDir, "main.go"))
	require.NoError(t, err)
	require.Contains(t, string(data), "// entry point")
}

func TestEndToEndNonDiffResponse(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	workDir, bareDir := initFixture(t)

	sh := &runner.Shell{Dir: workDir, Echo: &bytes.Buffer{}}
	o, err := New(e2eConfig(workDir), gitcli.New(sh), &fakeGenerator{response: "I cannot help with that."}, WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	outcome, err := o.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, OutcomeNonDiff, outcome)

	// Still on master, nothing pushed, no patch written.
	repo, err := git.PlainOpen(workDir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, plumbing.NewBranchReferenceName("master"), head.Name())

	bare, err := git.PlainOpen(bareDir)
	require.NoError(t, err)
	_, err = bare.Reference(plumbing.NewBranchReferenceName("codex/refactor-e2e"), true)
	require.Error(t, err, "change branch must not exist on the remote")

	_, err = os.Stat(filepath.Join(workDir, PatchFile))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEndToEndMalformedDiffAborts(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	workDir, bareDir := initFixture(t)

	malformed := "--- a/main.go\n+++ b/main.go\n@@ garbage @@\nnot a hunk\n"
	sh := &runner.Shell{Dir: workDir, Echo: &bytes.Buffer{}}
	o, err := New(e2eConfig(workDir), gitcli.New(sh), &fakeGenerator{response: malformed}, WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)

	_, err = o.Run(ctx)
	require.Error(t, err, "a malformed diff must abort the run")

	var exitErr *runner.ExitError
	require.True(t, errors.As(err, &exitErr), "want *runner.ExitError, got %T", err)
	require.NotZero(t, exitErr.Code)

	bare, err := git.PlainOpen(bareDir)
	require.NoError(t, err)
	_, err = bare.Reference(plumbing.NewBranchReferenceName("codex/refactor-e2e"), true)
	require.Error(t, err, "nothing may be pushed after a failed apply")
}
