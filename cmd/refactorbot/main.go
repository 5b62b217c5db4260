/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the one-shot refactor bot. It syncs the base
// branch, asks a hosted model for a unified diff over a repository snapshot,
// applies the diff on a fresh branch, and pushes it for the PR automation to
// pick up.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/codexops/refactorbot/generator"
	"github.com/codexops/refactorbot/gitcli"
	"github.com/codexops/refactorbot/refactor"
	"github.com/codexops/refactorbot/runner"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A .env file is optional; CI provides real environment variables.
	if err := godotenv.Load(); err != nil {
		clog.DebugContextf(ctx, "no .env file loaded: %v", err)
	}

	var cfg refactor.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}
	cfg.SetDefaults()

	gen, err := generator.New(ctx, cfg.GeneratorSettings())
	if err != nil {
		clog.FatalContextf(ctx, "configuring model provider: %v", err)
	}

	sh := &runner.Shell{Dir: cfg.WorkDir, Echo: os.Stdout}
	o, err := refactor.New(cfg, gitcli.New(sh), gen)
	if err != nil {
		clog.FatalContextf(ctx, "configuring run: %v", err)
	}

	outcome, err := o.Run(ctx)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			// Surface the failed command's streams and exit with its code,
			// so CI logs read like the command was run directly.
			fmt.Fprint(os.Stdout, exitErr.Stdout)
			fmt.Fprint(os.Stderr, exitErr.Stderr)
			clog.ErrorContextf(ctx, "run failed: %v", err)
			os.Exit(exitErr.Code)
		}
		clog.FatalContextf(ctx, "run failed: %v", err)
	}

	clog.InfoContextf(ctx, "run complete: %s", outcome)
}
