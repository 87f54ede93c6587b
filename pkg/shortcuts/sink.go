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
	"os"

	"github.com/rs/zerolog"
)

// ReportPrefix is attached to every message written by StderrSink.
const ReportPrefix = "Get-Windows-Shortcut-Properties"

// Sink receives human readable warnings and errors from a Reader. err may be
// nil.
type Sink interface {
	Report(msg string, err error)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(msg string, err error)

// Report calls f.
func (f SinkFunc) Report(msg string, err error) {
	f(msg, err)
}

// NopSink discards all reports.
var NopSink Sink = SinkFunc(func(string, error) {})

type logSink struct {
	logger zerolog.Logger
}

// LogSink reports through logger at error level.
//
//nolint:gocritic // zerolog loggers are passed by value
func LogSink(logger zerolog.Logger) Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Report(msg string, err error) {
	ev := s.logger.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// StderrSink is the default Sink, a console logger on standard error.
func StderrSink() Sink {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("source", ReportPrefix).
		Logger()
	return LogSink(logger)
}
