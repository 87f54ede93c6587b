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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ZaparooProject/lnkprops/pkg/config"
	"github.com/ZaparooProject/lnkprops/pkg/shortcuts"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrNoInput = errors.New("no shortcut paths given")

// ReaderOptions maps config values onto Reader options. Extra options are
// applied last.
func ReaderOptions(cfg *config.Instance, extra ...shortcuts.Option) []shortcuts.Option {
	parser := shortcuts.DefaultParser()
	parser.Indent = cfg.ContinuationIndent()

	opts := []shortcuts.Option{
		shortcuts.WithShell(cfg.ShellPath()),
		shortcuts.WithTimeout(cfg.Timeout()),
		shortcuts.WithHideWindow(cfg.HideWindow()),
		shortcuts.WithMaxCommandLength(cfg.MaxCommandLength()),
		shortcuts.WithConcurrency(cfg.Concurrency()),
		shortcuts.WithParser(parser),
		shortcuts.WithSink(shortcuts.LogSink(log.Logger)),
	}
	return append(opts, extra...)
}

// Run queries paths with reader and writes the records to w.
func Run(
	ctx context.Context,
	cfg *config.Instance,
	reader *shortcuts.Reader,
	paths []string,
	w io.Writer,
) error {
	if len(paths) == 0 {
		return ErrNoInput
	}

	records, err := reader.Get(ctx, paths...)
	if err != nil {
		return fmt.Errorf("failed to get shortcut properties: %w", err)
	}
	log.Info().Msgf("read %d of %d shortcuts", len(records), len(paths))

	return write(w, cfg, records, reader.Translate)
}

// RunRaw parses a saved PowerShell report at path and writes the records to
// w. Nothing is executed, so it works on any platform.
func RunRaw(fs afero.Fs, cfg *config.Instance, path string, w io.Writer) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	parser := shortcuts.DefaultParser()
	parser.Indent = cfg.ContinuationIndent()

	records := parser.ParseBytes(data)
	log.Info().Msgf("parsed %d shortcuts from %s", len(records), path)

	return write(w, cfg, records, shortcuts.Translate)
}

func write(
	w io.Writer,
	cfg *config.Instance,
	records []shortcuts.Properties,
	translate func([]shortcuts.Properties) []shortcuts.Shortcut,
) error {
	if cfg.Translate() {
		// nothing read has already been reported, don't translate an empty set
		if len(records) == 0 {
			return Encode(w, cfg.OutputFormat(), []shortcuts.Shortcut{})
		}
		return Encode(w, cfg.OutputFormat(), translate(records))
	}
	if records == nil {
		records = []shortcuts.Properties{}
	}
	return Encode(w, cfg.OutputFormat(), records)
}

// Post actions the query or raw report once config and logging are set up.
func (f *Flags) Post(ctx context.Context, cfg *config.Instance, w io.Writer) error {
	if f.isFlagPassed("raw") && *f.Raw != "" {
		return RunRaw(afero.NewOsFs(), cfg, *f.Raw, w)
	}
	reader := shortcuts.NewReader(ReaderOptions(cfg)...)
	return Run(ctx, cfg, reader, f.Paths(), w)
}
