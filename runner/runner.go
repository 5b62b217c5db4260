/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ExitError reports a checked command that finished with a non-zero exit
// status. It carries the captured output streams so the caller can surface
// them for diagnosis before terminating with Code.
type ExitError struct {
	Command string
	Code    int
	Stdout  string
	Stderr  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

// Shell executes commands with shell interpretation enabled. Commands inherit
// the process environment; Dir overrides the working directory when set.
// Every command is echoed to Echo before it runs.
type Shell struct {
	// Dir is the working directory for commands. Empty means the process's
	// current directory.
	Dir string

	// Echo receives the "$ <command>" line for each invocation. Defaults to
	// os.Stdout when nil.
	Echo io.Writer
}

// Run executes command through the shell and returns its trimmed stdout.
// A non-zero exit status is returned as an *ExitError carrying the captured
// streams. Any failed checked step invalidates the rest of the pipeline, so
// callers are expected to abort on it.
func (s *Shell) Run(ctx context.Context, command string) (string, error) {
	stdout, stderr, code, err := s.execute(ctx, command)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &ExitError{
			Command: command,
			Code:    code,
			Stdout:  stdout,
			Stderr:  stderr,
		}
	}
	return stdout, nil
}

// RunTolerant executes command and returns its trimmed stdout regardless of
// the exit status. Used for status queries where a non-zero exit is not a
// failure signal.
func (s *Shell) RunTolerant(ctx context.Context, command string) string {
	stdout, _, _, _ := s.execute(ctx, command)
	return stdout
}

func (s *Shell) execute(ctx context.Context, command string) (stdout, stderr string, code int, err error) {
	echo := s.Echo
	if echo == nil {
		echo = os.Stdout
	}
	fmt.Fprintf(echo, "$ %s\n", command)

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = s.Dir

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout = strings.TrimSpace(outBuf.String())
	stderr = errBuf.String()

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return stdout, stderr, exitErr.ExitCode(), nil
		}
		return stdout, stderr, 0, fmt.Errorf("starting command %q: %w", command, runErr)
	}
	return stdout, stderr, 0, nil
}
