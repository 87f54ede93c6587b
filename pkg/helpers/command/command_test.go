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

package command

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Output(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses unix shell utilities")
	}

	executor := &RealExecutor{}

	t.Run("returns_stdout", func(t *testing.T) {
		t.Parallel()

		out, err := executor.Output(context.Background(), "echo", "hello", "world")

		require.NoError(t, err)
		assert.Equal(t, "hello world", strings.TrimSpace(string(out)))
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()

		_, err := executor.Output(context.Background(), "false")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with code 1")
	})

	t.Run("includes_stderr_in_error", func(t *testing.T) {
		t.Parallel()

		_, err := executor.Output(context.Background(), "sh", "-c", "echo boom >&2; exit 3")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exited with code 3")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		_, err := executor.Output(context.Background(), "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})

	t.Run("respects_cancelled_context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := executor.Output(ctx, "sleep", "5")

		require.Error(t, err)
	})
}

func TestRealExecutor_OutputWithOptions(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses unix shell utilities")
	}

	executor := &RealExecutor{}

	t.Run("runs_with_hide_window", func(t *testing.T) {
		t.Parallel()

		out, err := executor.OutputWithOptions(context.Background(), Options{HideWindow: true}, "echo", "hidden")

		require.NoError(t, err)
		assert.Equal(t, "hidden", strings.TrimSpace(string(out)))
	})

	t.Run("runs_without_hide_window", func(t *testing.T) {
		t.Parallel()

		out, err := executor.OutputWithOptions(context.Background(), Options{}, "echo", "shown")

		require.NoError(t, err)
		assert.Equal(t, "shown", strings.TrimSpace(string(out)))
	})
}

func TestExecutor_Interface(t *testing.T) {
	t.Parallel()

	// Verify that RealExecutor implements Executor
	var _ Executor = (*RealExecutor)(nil)
}
