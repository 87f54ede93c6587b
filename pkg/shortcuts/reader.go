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

package shortcuts

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/ZaparooProject/lnkprops/pkg/helpers/command"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTimeout bounds a single PowerShell invocation.
	DefaultTimeout = 30 * time.Second
	// DefaultConcurrency is how many PowerShell processes may run at once
	// when a query is split into batches.
	DefaultConcurrency = 2
)

var (
	ErrUnsupportedPlatform = errors.New("platform is not Windows")
	ErrNoPaths             = errors.New("at least one path is required")
	ErrNoResult            = errors.New("no shortcut properties returned")
)

// Reader queries shortcut properties through PowerShell. A Reader holds no
// per-query state and is safe for concurrent use.
type Reader struct {
	executor         command.Executor
	validator        *Validator
	sink             Sink
	clock            clockwork.Clock
	parser           Parser
	shell            string
	goos             string
	timeout          time.Duration
	maxCommandLength int
	concurrency      int
	hideWindow       bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithExecutor sets the process executor.
func WithExecutor(e command.Executor) Option {
	return func(r *Reader) {
		r.executor = e
	}
}

// WithValidator sets the path validator.
func WithValidator(v *Validator) Option {
	return func(r *Reader) {
		r.validator = v
	}
}

// WithSink sets where warnings and errors are reported. A nil sink keeps the
// default stderr sink.
func WithSink(s Sink) Option {
	return func(r *Reader) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithParser sets the report parser.
func WithParser(p Parser) Option {
	return func(r *Reader) {
		r.parser = p
	}
}

// WithShell sets the PowerShell executable.
func WithShell(shell string) Option {
	return func(r *Reader) {
		r.shell = shell
	}
}

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(r *Reader) {
		r.goos = goos
	}
}

// WithTimeout bounds each PowerShell invocation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Reader) {
		r.timeout = d
	}
}

// WithMaxCommandLength sets the script length a batch may not exceed.
func WithMaxCommandLength(n int) Option {
	return func(r *Reader) {
		r.maxCommandLength = n
	}
}

// WithConcurrency limits concurrent PowerShell processes.
func WithConcurrency(n int) Option {
	return func(r *Reader) {
		r.concurrency = n
	}
}

// WithHideWindow controls whether PowerShell gets a console window.
func WithHideWindow(hide bool) Option {
	return func(r *Reader) {
		r.hideWindow = hide
	}
}

// WithClock sets the clock used to time queries.
func WithClock(c clockwork.Clock) Option {
	return func(r *Reader) {
		r.clock = c
	}
}

// NewReader returns a Reader that runs the real PowerShell and reports to
// stderr unless configured otherwise.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		executor:         &command.RealExecutor{},
		sink:             StderrSink(),
		clock:            clockwork.NewRealClock(),
		parser:           DefaultParser(),
		shell:            DefaultShell,
		goos:             runtime.GOOS,
		timeout:          DefaultTimeout,
		maxCommandLength: DefaultMaxCommandLength,
		concurrency:      DefaultConcurrency,
		hideWindow:       true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.validator == nil {
		r.validator = NewValidator(nil)
	}
	if r.concurrency < 1 {
		r.concurrency = 1
	}
	return r
}

// Get returns the properties of each valid shortcut in paths, in input
// order. Invalid paths are reported to the sink and skipped. When no path is
// valid, Get returns nil without running anything.
func (r *Reader) Get(ctx context.Context, paths ...string) ([]Properties, error) {
	if r.goos != "windows" {
		r.sink.Report("Platform is not Windows", nil)
		return nil, ErrUnsupportedPlatform
	}
	if len(paths) == 0 {
		r.sink.Report("First argument must be a path or list of paths", nil)
		return nil, ErrNoPaths
	}

	valid := r.normalize(paths)
	if len(valid) == 0 {
		return nil, nil
	}

	logger := log.With().Str("query", uuid.New().String()).Logger()
	start := r.clock.Now()

	batches := Batches(valid, r.maxCommandLength)
	results := make([][]Properties, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, batch := range batches {
		g.Go(func() error {
			records, err := r.runBatch(gctx, batch)
			if err != nil {
				return err
			}
			if len(records) != len(batch) {
				logger.Warn().Msgf(
					"batch %d: expected %d records, got %d",
					i, len(batch), len(records),
				)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.sink.Report("Failed to run powershell command to get shortcut properties", err)
		return nil, fmt.Errorf("failed to query shortcut properties: %w", err)
	}

	records := make([]Properties, 0, len(valid))
	for _, batch := range results {
		records = append(records, batch...)
	}

	logger.Debug().
		Int("paths", len(valid)).
		Int("batches", len(batches)).
		Int("records", len(records)).
		Dur("took", r.clock.Since(start)).
		Msg("queried shortcut properties")

	return records, nil
}

// GetOne returns the properties of a single shortcut.
func (r *Reader) GetOne(ctx context.Context, path string) (Properties, error) {
	records, err := r.Get(ctx, path)
	if err != nil {
		return Properties{}, err
	}
	if len(records) == 0 {
		return Properties{}, ErrNoResult
	}
	return records[0], nil
}

// Translate renames records the way the package-level Translate does, and
// reports an empty input to the sink.
func (r *Reader) Translate(records []Properties) []Shortcut {
	if len(records) == 0 {
		r.sink.Report("The shortcut properties must be a non-empty list", nil)
		return nil
	}
	return Translate(records)
}

func (r *Reader) normalize(paths []string) []string {
	valid := make([]string, 0, len(paths))
	for _, p := range paths {
		normalized, err := r.validator.Normalize(p)
		if err != nil {
			r.sink.Report("File path must point to a .lnk or .url file that exists", err)
			continue
		}
		valid = append(valid, normalized)
	}
	return valid
}

func (r *Reader) runBatch(ctx context.Context, paths []string) ([]Properties, error) {
	name, args := BuildCommand(r.shell, paths)
	if name == "" {
		return nil, nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out, err := r.executor.OutputWithOptions(
		ctx,
		command.Options{HideWindow: r.hideWindow},
		name,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return r.parser.ParseBytes(out), nil
}
