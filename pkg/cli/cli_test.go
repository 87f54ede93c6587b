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
	"bytes"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/ZaparooProject/lnkprops/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() *Flags {
	set := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	set.SetOutput(io.Discard)
	return NewFlags(set)
}

func TestFlags_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantPaths []string
		wantStop  bool
		wantErr   bool
	}{
		{
			name:      "paths only",
			args:      []string{`C:\a.lnk`, `C:\b.url`},
			wantPaths: []string{`C:\a.lnk`, `C:\b.url`},
		},
		{
			name:      "flags before paths",
			args:      []string{"-format", "csv", "-translate", `C:\a.lnk`},
			wantPaths: []string{`C:\a.lnk`},
		},
		{
			name:     "version stops",
			args:     []string{"-version"},
			wantStop: true,
		},
		{
			name:     "unknown flag",
			args:     []string{"-nope"},
			wantStop: true,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newTestFlags()
			var out bytes.Buffer

			stop, err := f.Parse(tt.args, &out)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStop, stop)
			if !tt.wantStop {
				assert.Equal(t, tt.wantPaths, f.Paths())
			}
		})
	}
}

func TestFlags_ParseVersionOutput(t *testing.T) {
	t.Parallel()

	f := newTestFlags()
	var out bytes.Buffer

	stop, err := f.Parse([]string{"-version"}, &out)

	require.NoError(t, err)
	assert.True(t, stop)
	assert.Contains(t, out.String(), config.AppName+" v"+config.AppVersion)
}

func TestFlags_ApplyOnlyPassed(t *testing.T) {
	t.Parallel()

	t.Run("passed flags override config", func(t *testing.T) {
		t.Parallel()

		f := newTestFlags()
		_, err := f.Parse([]string{"-format", "yaml", "-translate"}, io.Discard)
		require.NoError(t, err)

		cfg := config.NewDefaultConfig(config.BaseDefaults)
		f.Apply(cfg)

		assert.Equal(t, config.FormatYAML, cfg.OutputFormat())
		assert.True(t, cfg.Translate())
	})

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		f := newTestFlags()
		_, err := f.Parse([]string{`C:\a.lnk`}, io.Discard)
		require.NoError(t, err)

		cfg := config.NewDefaultConfig(config.BaseDefaults)
		cfg.SetOutputFormat(config.FormatCSV)
		cfg.SetTranslate(true)
		f.Apply(cfg)

		assert.Equal(t, config.FormatCSV, cfg.OutputFormat())
		assert.True(t, cfg.Translate())
	})

	t.Run("explicit false translate", func(t *testing.T) {
		t.Parallel()

		f := newTestFlags()
		_, err := f.Parse([]string{"-translate=false"}, io.Discard)
		require.NoError(t, err)

		cfg := config.NewDefaultConfig(config.BaseDefaults)
		cfg.SetTranslate(true)
		f.Apply(cfg)

		assert.False(t, cfg.Translate())
	})
}

func TestSetup_UsesFlagDirectories(t *testing.T) {
	prev := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(level)
	})
	t.Setenv(config.CfgEnv, "")

	logDir := filepath.Join(t.TempDir(), "logs")
	cfgDir := filepath.Join(t.TempDir(), "cfg")

	f := newTestFlags()
	_, err := f.Parse([]string{"-log-dir", logDir, "-config", cfgDir, "-format", "csv"}, io.Discard)
	require.NoError(t, err)

	cfg, err := Setup(f, config.BaseDefaults, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfgDir, config.CfgFile), cfg.Path())
	assert.Equal(t, config.FormatCSV, cfg.OutputFormat())
	assert.FileExists(t, filepath.Join(cfgDir, config.CfgFile))
	assert.DirExists(t, logDir)
}
