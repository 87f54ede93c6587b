// Zaparoo LNK Props
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo LNK Props.
//
// Zaparoo LNK Props is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo LNK Props is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo LNK Props.  If not, see <http://www.gnu.org/licenses/>.

// Package command provides an abstraction over exec.Command for testability.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Options configures how a command is started.
type Options struct {
	// HideWindow prevents a console window from appearing (Windows-only).
	// On non-Windows platforms, this field is ignored.
	HideWindow bool
}

// Executor provides an abstraction over exec.Command for testability.
// This allows commands to be mocked in tests without executing real system commands.
type Executor interface {
	// Output runs a command and returns its standard output.
	// Returns an error if the command fails to start or exits with non-zero status.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// OutputWithOptions runs a command with platform-specific options and
	// returns its standard output.
	OutputWithOptions(ctx context.Context, opts Options, name string, args ...string) ([]byte, error)
}

// RealExecutor uses actual exec.Command to execute system commands.
// This is the production implementation used in normal operation.
type RealExecutor struct{}

// Output runs a command and returns its standard output.
func (e *RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return e.OutputWithOptions(ctx, Options{}, name, args...)
}

// output runs cmd and folds the captured stderr into the error when the
// process exits non-zero.
func output(cmd *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return out, fmt.Errorf("%s exited with code %d: %w: %s",
				cmd.Path, exitErr.ExitCode(), err, msg)
		}
		return out, fmt.Errorf("%s exited with code %d: %w", cmd.Path, exitErr.ExitCode(), err)
	}
	return out, fmt.Errorf("failed to run %s: %w", cmd.Path, err)
}
